package rosterfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kwucouncil/council-api/internal/platform/cache"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRepository_FindFreshmanAndStudent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	freshmen := writeFile(t, dir, "freshmen.json", `[
		{"name":"김광운","birth_date":"060312","is_form":true,"is_cost":false},
		{"name":"김광운","birth_date":"060312","is_form":false,"is_cost":false}
	]`)
	students := writeFile(t, dir, "students.json", `[
		{"name":"이참빛","student_id":"2021123456","is_form":true,"is_cost":true}
	]`)

	repo := NewRepository(freshmen, students, cache.NewStore(0))
	ctx := context.Background()

	f, ok, err := repo.FindFreshman(ctx, "김광운", "060312")
	if err != nil || !ok {
		t.Fatalf("find freshman: ok=%v err=%v", ok, err)
	}
	if !f.IsForm || f.IsCost {
		t.Fatalf("expected first record to win: %+v", f)
	}

	if _, ok, _ := repo.FindFreshman(ctx, "김광운 ", "060312"); ok {
		t.Fatalf("lookup must match names exactly")
	}

	s, ok, err := repo.FindStudent(ctx, "이참빛", "2021123456")
	if err != nil || !ok {
		t.Fatalf("find student: ok=%v err=%v", ok, err)
	}
	if !s.IsForm || !s.IsCost {
		t.Fatalf("unexpected student: %+v", s)
	}
}

func TestRepository_CachesIndexUntilInvalidated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	students := writeFile(t, dir, "students.json", `[{"name":"a","student_id":"1","is_form":true,"is_cost":true}]`)
	repo := NewRepository("", students, cache.NewStore(0))
	ctx := context.Background()

	if _, ok, err := repo.FindStudent(ctx, "a", "1"); err != nil || !ok {
		t.Fatalf("first lookup: ok=%v err=%v", ok, err)
	}

	writeFile(t, dir, "students.json", `[]`)
	if _, ok, _ := repo.FindStudent(ctx, "a", "1"); !ok {
		t.Fatalf("expected cached index to answer")
	}

	repo.Invalidate(ctx)
	if _, ok, _ := repo.FindStudent(ctx, "a", "1"); ok {
		t.Fatalf("expected reload after invalidate")
	}
}

func TestRepository_LoadFailuresAreNotCached(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "freshmen.json")
	store := cache.NewStore(0)
	repo := NewRepository(path, "", store)
	ctx := context.Background()

	if _, _, err := repo.FindFreshman(ctx, "a", "b"); err == nil {
		t.Fatalf("expected missing file error")
	}
	if store.Len() != 0 {
		t.Fatalf("failed load must not be cached")
	}

	writeFile(t, dir, "freshmen.json", `{not json`)
	if _, _, err := repo.FindFreshman(ctx, "a", "b"); err == nil {
		t.Fatalf("expected decode error")
	}

	writeFile(t, dir, "freshmen.json", `[{"name":"a","birth_date":"b","is_form":true,"is_cost":true}]`)
	if _, ok, err := repo.FindFreshman(ctx, "a", "b"); err != nil || !ok {
		t.Fatalf("expected recovery: ok=%v err=%v", ok, err)
	}
}

func TestRepository_MissingPath(t *testing.T) {
	t.Parallel()

	repo := NewRepository("", "", nil)
	if _, _, err := repo.FindStudent(context.Background(), "a", "1"); err == nil {
		t.Fatalf("expected unconfigured path error")
	}
}
