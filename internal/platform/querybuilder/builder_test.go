package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("department").
		Where(Eq("college_id", int64(3)), IsNull("logo_url")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM department WHERE college_id = $1 AND logo_url IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrILikeOffset(t *testing.T) {
	query, args, err := Select("id", "title").
		From("announcements").
		Where(Or(ILikeContains("title", "50%_off"), ILikeContains("content", "50%_off"))).
		OrderBy("published_at DESC", "id DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, title FROM announcements WHERE (title ILIKE $1 OR content ILIKE $2) ORDER BY published_at DESC, id DESC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != `%50\%\_off%` {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_CountSQLIgnoresPaging(t *testing.T) {
	query, args, err := Select("id").
		From("match").
		Where(Eq("is_played", true), Expr("EXISTS (SELECT 1 FROM participation p WHERE p.match_id = match.id AND p.department_id = ?)", int64(9))).
		OrderBy("match_date").
		Limit(20).
		Offset(40).
		CountSQL()
	if err != nil {
		t.Fatalf("build count query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM match WHERE is_played = $1 AND EXISTS (SELECT 1 FROM participation p WHERE p.match_id = match.id AND p.department_id = $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestOr_EmptyNeverMatches(t *testing.T) {
	query, _, err := Select("id").From("venue").Where(Or()).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM venue WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestComparisons(t *testing.T) {
	query, args, err := Select("id").
		From("match").
		Where(Lte("match_date", "2025-05-20"), Gte("period_start", 2), IsNotNull("sport_id")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM match WHERE match_date <= $1 AND period_start >= $2 AND sport_id IS NOT NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("minutes").
		Columns("title", "file_url").
		Values("정기회의", "https://example.com/a.pdf").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO minutes (title, file_url) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "정기회의" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name      string `db:"name"`
		StudentID string `db:"student_id"`
		Ignored   string `db:"-"`
		internal  string
	}

	query, args, err := InsertModel("predictions", row{Name: "Kim", StudentID: "2021123456"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	if query != "INSERT INTO predictions (name, student_id) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[1] != "2021123456" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("match").
		Set("is_played", true).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE match SET is_played = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != true || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
