// Package rosterfile serves roster lookups from the JSON exports kept next to
// the deployment.
package rosterfile

import (
	"context"
	"fmt"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/kwucouncil/council-api/internal/domain/roster"
	"github.com/kwucouncil/council-api/internal/platform/cache"
)

const (
	freshmenCacheKey = "roster:freshmen"
	studentsCacheKey = "roster:students"
)

type freshmanRecord struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	IsForm    bool   `json:"is_form"`
	IsCost    bool   `json:"is_cost"`
}

type studentRecord struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
	IsForm    bool   `json:"is_form"`
	IsCost    bool   `json:"is_cost"`
}

type freshmenIndex map[string]roster.Freshman

type studentsIndex map[string]roster.Student

// Repository reads both files lazily and keeps the decoded index in the cache
// store. A failed read is retried on the next call.
type Repository struct {
	freshmenPath string
	studentsPath string
	store        *cache.Store
}

func NewRepository(freshmenPath, studentsPath string, store *cache.Store) *Repository {
	if store == nil {
		store = cache.NewStore(0)
	}
	return &Repository{
		freshmenPath: freshmenPath,
		studentsPath: studentsPath,
		store:        store,
	}
}

func (r *Repository) FindFreshman(ctx context.Context, name, birthDate string) (roster.Freshman, bool, error) {
	index, err := cache.Load(ctx, r.store, freshmenCacheKey, func(context.Context) (freshmenIndex, error) {
		return r.loadFreshmen()
	})
	if err != nil {
		return roster.Freshman{}, false, err
	}

	found, ok := index[indexKey(name, birthDate)]
	return found, ok, nil
}

func (r *Repository) FindStudent(ctx context.Context, name, studentID string) (roster.Student, bool, error) {
	index, err := cache.Load(ctx, r.store, studentsCacheKey, func(context.Context) (studentsIndex, error) {
		return r.loadStudents()
	})
	if err != nil {
		return roster.Student{}, false, err
	}

	found, ok := index[indexKey(name, studentID)]
	return found, ok, nil
}

// Invalidate drops both indexes so the next lookup rereads the files.
func (r *Repository) Invalidate(ctx context.Context) {
	r.store.DeletePrefix(ctx, "roster:")
}

func (r *Repository) loadFreshmen() (freshmenIndex, error) {
	var records []freshmanRecord
	if err := readJSON(r.freshmenPath, &records); err != nil {
		return nil, err
	}

	index := make(freshmenIndex, len(records))
	for _, rec := range records {
		key := indexKey(rec.Name, rec.BirthDate)
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = roster.Freshman{Name: rec.Name, BirthDate: rec.BirthDate, IsForm: rec.IsForm, IsCost: rec.IsCost}
	}
	return index, nil
}

func (r *Repository) loadStudents() (studentsIndex, error) {
	var records []studentRecord
	if err := readJSON(r.studentsPath, &records); err != nil {
		return nil, err
	}

	index := make(studentsIndex, len(records))
	for _, rec := range records {
		key := indexKey(rec.Name, rec.StudentID)
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = roster.Student{Name: rec.Name, StudentID: rec.StudentID, IsForm: rec.IsForm, IsCost: rec.IsCost}
	}
	return index, nil
}

func readJSON(path string, out any) error {
	if path == "" {
		return fmt.Errorf("roster file path is not configured")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read roster file %s: %w", path, err)
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode roster file %s: %w", path, err)
	}
	return nil
}

// indexKey matches exactly, the same way the lookup compares both fields.
func indexKey(name, second string) string {
	return name + "\x00" + second
}
