package match

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Match, int, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	ListBySlot(ctx context.Context, date string, periodStart int) ([]Match, error)
	LatestUpdatedAt(ctx context.Context, sportID *int64) (*time.Time, error)
	DepartmentIDsBySport(ctx context.Context, sportID int64) ([]int64, error)
	// ListPlayedParticipations returns participations of played matches only.
	ListPlayedParticipations(ctx context.Context, sportID *int64) ([]Participation, error)
	UpdateScores(ctx context.Context, update ScoreUpdate) error
	UpdateStatus(ctx context.Context, update StatusUpdate) (Match, bool, error)
}
