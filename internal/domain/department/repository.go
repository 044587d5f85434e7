package department

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Department, error)
	// FindByExactName matches name or name_eng case-insensitively, lowest id first.
	FindByExactName(ctx context.Context, name string) (Department, bool, error)
	// FindByNameFragment matches a substring of name or name_eng, lowest id first.
	FindByNameFragment(ctx context.Context, fragment string) (Department, bool, error)
}
