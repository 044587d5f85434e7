package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kwucouncil/council-api/internal/domain/prediction"
	qb "github.com/kwucouncil/council-api/internal/platform/querybuilder"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) ExistsByStudentID(ctx context.Context, studentID string) (bool, error) {
	inner, args, err := qb.Select("1").From("predictions").
		Where(qb.Eq("student_id", studentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build prediction exists query: %w", err)
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS ("+inner+")", args...); err != nil {
		return false, fmt.Errorf("check prediction exists: %w", err)
	}
	return exists, nil
}

// Create inserts p. Constraint violations come back classified so the caller
// can tell duplicates from unknown departments.
func (r *PredictionRepository) Create(ctx context.Context, p prediction.Prediction) (prediction.Prediction, error) {
	query, args, err := qb.InsertModel("predictions", predictionInsertModel{
		Name:        p.Name,
		StudentID:   p.StudentID,
		Phone:       p.Phone,
		FirstPlace:  p.FirstPlace,
		SecondPlace: p.SecondPlace,
		ThirdPlace:  p.ThirdPlace,
		CreatedAt:   p.CreatedAt,
	}, predictionReturning)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("build insert prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return prediction.Prediction{}, fmt.Errorf("insert prediction: %w", classifyError(err))
	}
	return predictionFromRow(row), nil
}

func (r *PredictionRepository) List(ctx context.Context, offset, limit int) ([]prediction.Prediction, int, error) {
	builder := qb.Select("*").From("predictions").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset)

	countQuery, countArgs, err := builder.CountSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count predictions query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count predictions: %w", err)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list predictions query: %w", err)
	}
	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, total, nil
}

func (r *PredictionRepository) GetByID(ctx context.Context, id int64) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}
	return predictionFromRow(row), true, nil
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		ID:          row.ID,
		Name:        row.Name,
		StudentID:   row.StudentID,
		Phone:       row.Phone,
		FirstPlace:  row.FirstPlace,
		SecondPlace: row.SecondPlace,
		ThirdPlace:  row.ThirdPlace,
		CreatedAt:   row.CreatedAt,
	}
}
