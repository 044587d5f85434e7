package postgres

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/platform/pagination"
	"github.com/kwucouncil/council-api/internal/usecase"
	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// classifyError marks storage failures with the usecase error kind they map
// to. It never attaches user-facing hints.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return crerr.Mark(err, usecase.ErrNotFound)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23505":
		return crerr.Mark(err, usecase.ErrConflict)
	case "23503":
		return crerr.Mark(err, usecase.ErrReferenceNotFound)
	case "22P02", "22007", "22008", "23514":
		return crerr.Mark(err, usecase.ErrInvalidInput)
	case "42501":
		return crerr.Mark(err, usecase.ErrForbidden)
	default:
		return err
	}
}

// orderClauses renders fields that appear in allow, mapping each to its SQL
// expression. Descending order sorts NULLs last.
func orderClauses(fields []pagination.SortField, allow map[string]string) []string {
	out := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		expr, ok := allow[strings.ToLower(f.Column)]
		if !ok {
			continue
		}
		if f.Direction == pagination.Desc {
			out = append(out, expr+" DESC NULLS LAST")
			continue
		}
		out = append(out, expr+" ASC")
	}
	return out
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func int64Args(ids []int64) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}
