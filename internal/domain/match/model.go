package match

import (
	"time"

	"github.com/kwucouncil/council-api/internal/platform/pagination"
)

type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Team is the department side of a participation.
type Team struct {
	ID        int64
	Name      string
	NameEng   string
	LogoURL   string
	CollegeID *int64
}

// Participation is one department's presence in a match. Department is nil
// when the row has no department attached.
type Participation struct {
	ID         int64
	MatchID    int64
	Side       Side
	Score      int
	Department *Team
}

type Match struct {
	ID             int64
	Date           string
	PeriodStart    int
	IsPlayed       bool
	RainCanceled   bool
	AdminNote      *string
	SportID        *int64
	SportName      string
	SportNameEng   string
	VenueID        *int64
	VenueName      string
	CreatedAt      *time.Time
	UpdatedAt      *time.Time
	Participations []Participation
}

// Participant returns the first participation on the given side, with or without a department.
func (m Match) Participant(side Side) (Participation, bool) {
	for _, p := range m.Participations {
		if p.Side == side {
			return p, true
		}
	}
	return Participation{}, false
}

// Filter drives match listings. Department and college filters are applied
// with EXISTS so a match is never multiplied by its participations.
type Filter struct {
	Date         string
	DateTo       string
	SportID      *int64
	SportName    string
	CollegeID    *int64
	DepartmentID *int64
	Played       *bool
	RainCanceled *bool
	Sort         []pagination.SortField
	Offset       int
	Limit        int
}

// ScoreUpdate writes both side scores and the match flags atomically.
type ScoreUpdate struct {
	MatchID             int64
	HomeParticipationID int64
	AwayParticipationID int64
	HomeScore           int
	AwayScore           int
	IsPlayed            *bool
	AdminNote           *string
	AdminNoteSet        bool
}

type StatusUpdate struct {
	MatchID      int64
	IsPlayed     *bool
	RainCanceled *bool
	AdminNote    *string
	AdminNoteSet bool
}
