package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kwucouncil/council-api/internal/domain/match"
	qb "github.com/kwucouncil/council-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, int, error) {
	builder := qb.Select(matchColumns...).From(matchFrom).
		Where(matchConditions(filter)...).
		OrderBy(append(orderClauses(filter.Sort, matchSortColumns), "m.id ASC")...).
		Limit(filter.Limit).
		Offset(filter.Offset)

	countQuery, countArgs, err := builder.CountSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count matches query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list matches query: %w", err)
	}
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list matches: %w", err)
	}

	out, err := r.withParticipations(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From(matchFrom).
		Where(qb.Eq("m.id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	out, err := r.withParticipations(ctx, []matchTableModel{row})
	if err != nil {
		return match.Match{}, false, err
	}
	return out[0], true, nil
}

func (r *MatchRepository) ListBySlot(ctx context.Context, date string, periodStart int) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From(matchFrom).
		Where(
			qb.Eq("m.match_date", date),
			qb.Eq("m.period_start", periodStart),
		).
		OrderBy("m.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches by slot query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches by slot: %w", err)
	}
	return r.withParticipations(ctx, rows)
}

func (r *MatchRepository) LatestUpdatedAt(ctx context.Context, sportID *int64) (*time.Time, error) {
	builder := qb.Select("MAX(updated_at)").From("match")
	if sportID != nil {
		builder.Where(qb.Eq("sport_id", *sportID))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build latest match update query: %w", err)
	}

	var latest sql.NullTime
	if err := r.db.GetContext(ctx, &latest, query, args...); err != nil {
		return nil, fmt.Errorf("get latest match update: %w", err)
	}
	return nullTimePtr(latest), nil
}

func (r *MatchRepository) DepartmentIDsBySport(ctx context.Context, sportID int64) ([]int64, error) {
	query, args, err := qb.Select("DISTINCT p.department_id").
		From("participation p JOIN match m ON m.id = p.match_id").
		Where(
			qb.Eq("m.sport_id", sportID),
			qb.IsNotNull("p.department_id"),
		).
		OrderBy("p.department_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list sport departments query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list sport departments: %w", err)
	}
	return ids, nil
}

func (r *MatchRepository) ListPlayedParticipations(ctx context.Context, sportID *int64) ([]match.Participation, error) {
	conditions := []qb.Condition{qb.Eq("m.is_played", true)}
	if sportID != nil {
		conditions = append(conditions, qb.Eq("m.sport_id", *sportID))
	}
	query, args, err := qb.Select(participationColumns...).
		From(participationFrom + " JOIN match m ON m.id = p.match_id").
		Where(conditions...).
		OrderBy("p.match_id", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list played participations query: %w", err)
	}

	var rows []participationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list played participations: %w", err)
	}

	out := make([]match.Participation, 0, len(rows))
	for _, row := range rows {
		out = append(out, participationFromRow(row))
	}
	return out, nil
}

// UpdateScores writes both participation scores and the match flags in one
// transaction. updated_at always moves forward.
func (r *MatchRepository) UpdateScores(ctx context.Context, update match.ScoreUpdate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update scores: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	sides := []struct {
		participationID int64
		score           int
	}{
		{participationID: update.HomeParticipationID, score: update.HomeScore},
		{participationID: update.AwayParticipationID, score: update.AwayScore},
	}
	for _, side := range sides {
		query, args, err := qb.Update("participation").
			Set("score", side.score).
			Where(
				qb.Eq("id", side.participationID),
				qb.Eq("match_id", update.MatchID),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update participation score query: %w", err)
		}
		if err := execOne(ctx, tx, query, args); err != nil {
			return fmt.Errorf("update participation %d score: %w", side.participationID, err)
		}
	}

	builder := qb.Update("match")
	if update.IsPlayed != nil {
		builder.Set("is_played", *update.IsPlayed)
	}
	if update.AdminNoteSet {
		builder.Set("admin_note", update.AdminNote)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", update.MatchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	if err := execOne(ctx, tx, query, args); err != nil {
		return fmt.Errorf("update match %d: %w", update.MatchID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update scores: %w", classifyError(err))
	}
	return nil
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, update match.StatusUpdate) (match.Match, bool, error) {
	builder := qb.Update("match")
	if update.IsPlayed != nil {
		builder.Set("is_played", *update.IsPlayed)
	}
	if update.RainCanceled != nil {
		builder.Set("rain_canceled", *update.RainCanceled)
	}
	if update.AdminNoteSet {
		builder.Set("admin_note", update.AdminNote)
	}
	query, args, err := builder.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", update.MatchID)).
		Suffix("RETURNING id, is_played, rain_canceled, admin_note").
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build update match status query: %w", err)
	}

	var row matchStatusModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("update match status: %w", classifyError(err))
	}

	return match.Match{
		ID:           row.ID,
		IsPlayed:     row.IsPlayed,
		RainCanceled: row.RainCanceled,
		AdminNote:    nullStringPtr(row.AdminNote),
	}, true, nil
}

func (r *MatchRepository) withParticipations(ctx context.Context, rows []matchTableModel) ([]match.Match, error) {
	out := make([]match.Match, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(rows))
	index := make(map[int64][]int, len(rows))
	for i, row := range rows {
		out = append(out, matchFromRow(row))
		if _, seen := index[row.ID]; !seen {
			ids = append(ids, row.ID)
		}
		index[row.ID] = append(index[row.ID], i)
	}

	query, args, err := qb.Select(participationColumns...).From(participationFrom).
		Where(qb.In("p.match_id", int64Args(ids))).
		OrderBy("p.match_id", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list participations query: %w", err)
	}

	var parts []participationTableModel
	if err := r.db.SelectContext(ctx, &parts, query, args...); err != nil {
		return nil, fmt.Errorf("list participations: %w", err)
	}
	for _, part := range parts {
		for _, i := range index[part.MatchID] {
			out[i].Participations = append(out[i].Participations, participationFromRow(part))
		}
	}
	return out, nil
}

func matchConditions(filter match.Filter) []qb.Condition {
	var conditions []qb.Condition
	if filter.Date != "" {
		conditions = append(conditions, qb.Eq("m.match_date", filter.Date))
	}
	if filter.DateTo != "" {
		conditions = append(conditions, qb.Lte("m.match_date", filter.DateTo))
	}
	if filter.SportID != nil {
		conditions = append(conditions, qb.Eq("m.sport_id", *filter.SportID))
	} else if filter.SportName != "" {
		conditions = append(conditions, qb.Eq("s.name", filter.SportName))
	}
	if filter.Played != nil {
		conditions = append(conditions, qb.Eq("m.is_played", *filter.Played))
	}
	if filter.RainCanceled != nil {
		conditions = append(conditions, qb.Eq("m.rain_canceled", *filter.RainCanceled))
	}
	if filter.DepartmentID != nil {
		conditions = append(conditions, qb.Expr(
			"EXISTS (SELECT 1 FROM participation fp WHERE fp.match_id = m.id AND fp.department_id = ?)",
			*filter.DepartmentID,
		))
	}
	if filter.CollegeID != nil {
		conditions = append(conditions, qb.Expr(
			"EXISTS (SELECT 1 FROM participation fp JOIN department fd ON fd.id = fp.department_id WHERE fp.match_id = m.id AND fd.college_id = ?)",
			*filter.CollegeID,
		))
	}
	return conditions
}

// execOne runs an update that must touch exactly one row.
func execOne(ctx context.Context, tx *sqlx.Tx, query string, args []any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return classifyError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return classifyError(sql.ErrNoRows)
	}
	return nil
}
