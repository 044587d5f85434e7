package prediction

import "context"

type Repository interface {
	ExistsByStudentID(ctx context.Context, studentID string) (bool, error)
	Create(ctx context.Context, p Prediction) (Prediction, error)
	List(ctx context.Context, offset, limit int) ([]Prediction, int, error)
	GetByID(ctx context.Context, id int64) (Prediction, bool, error)
}
