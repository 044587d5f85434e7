package roster

import "context"

type Repository interface {
	FindFreshman(ctx context.Context, name, birthDate string) (Freshman, bool, error)
	FindStudent(ctx context.Context, name, studentID string) (Student, bool, error)
}
