package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kwucouncil/council-api/internal/domain/minutes"
	qb "github.com/kwucouncil/council-api/internal/platform/querybuilder"
)

type MinutesRepository struct {
	db *sqlx.DB
}

func NewMinutesRepository(db *sqlx.DB) *MinutesRepository {
	return &MinutesRepository{db: db}
}

func (r *MinutesRepository) List(ctx context.Context, q minutes.Query) ([]minutes.Minutes, int, error) {
	builder := qb.Select(minutesColumns...).From("minutes").
		OrderBy("date DESC", "created_at DESC", "id DESC").
		Limit(q.Limit).
		Offset(q.Offset)
	if q.Search != "" {
		builder.Where(qb.ILikeContains("title", q.Search))
	}

	countQuery, countArgs, err := builder.CountSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count minutes query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count minutes: %w", err)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list minutes query: %w", err)
	}
	var rows []minutesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list minutes: %w", err)
	}

	out := make([]minutes.Minutes, 0, len(rows))
	for _, row := range rows {
		out = append(out, minutes.Minutes(row))
	}
	return out, total, nil
}

func (r *MinutesRepository) GetByID(ctx context.Context, id int64) (minutes.Minutes, bool, error) {
	query, args, err := qb.Select(minutesColumns...).From("minutes").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return minutes.Minutes{}, false, fmt.Errorf("build get minutes query: %w", err)
	}

	var row minutesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return minutes.Minutes{}, false, nil
		}
		return minutes.Minutes{}, false, fmt.Errorf("get minutes: %w", err)
	}
	return minutes.Minutes(row), true, nil
}

func (r *MinutesRepository) Create(ctx context.Context, m minutes.Minutes) (minutes.Minutes, error) {
	query, args, err := qb.InsertModel("minutes", minutesInsertModel{
		Title:   m.Title,
		FileURL: m.FileURL,
		Date:    m.Date,
	}, minutesReturning)
	if err != nil {
		return minutes.Minutes{}, fmt.Errorf("build insert minutes query: %w", err)
	}

	var row minutesTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return minutes.Minutes{}, fmt.Errorf("insert minutes: %w", classifyError(err))
	}
	return minutes.Minutes(row), nil
}
