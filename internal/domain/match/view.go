package match

import "github.com/kwucouncil/council-api/internal/platform/medialink"

type Winner string

const (
	WinnerTeam1 Winner = "team1"
	WinnerTeam2 Winner = "team2"
)

// TeamView is one side of a public match card. ID is nil for the placeholder.
type TeamView struct {
	ID      *int64
	Name    string
	NameEng string
	Logo    string
	LogoRaw string
	Score   int
}

type View struct {
	ID     int64
	Date   string
	Start  int
	Place  string
	Sport  string
	Team1  TeamView
	Team2  TeamView
	Rain   bool
	Result bool
	Win    *Winner
}

// Placeholder stands in for a missing side.
func Placeholder() TeamView {
	return TeamView{}
}

// Normalize maps home to team1 and away to team2. Participations without a
// department are skipped, so such a side renders as the placeholder.
func Normalize(m Match) View {
	team1, team2 := Placeholder(), Placeholder()
	var haveHome, haveAway bool
	for _, p := range m.Participations {
		if p.Department == nil || p.Department.ID == 0 {
			continue
		}
		switch {
		case p.Side == SideHome && !haveHome:
			team1, haveHome = teamView(p), true
		case p.Side == SideAway && !haveAway:
			team2, haveAway = teamView(p), true
		}
	}

	return View{
		ID:     m.ID,
		Date:   m.Date,
		Start:  m.PeriodStart,
		Place:  m.VenueName,
		Sport:  m.SportName,
		Team1:  team1,
		Team2:  team2,
		Rain:   m.RainCanceled,
		Result: m.IsPlayed,
		Win:    DecideWinner(m.IsPlayed, team1, team2),
	}
}

// DecideWinner yields nil for unplayed matches, draws, and matches with a missing side.
func DecideWinner(played bool, team1, team2 TeamView) *Winner {
	if !played || team1.ID == nil || team2.ID == nil || team1.Score == team2.Score {
		return nil
	}
	w := WinnerTeam2
	if team1.Score > team2.Score {
		w = WinnerTeam1
	}
	return &w
}

// Dedupe keeps the first occurrence of every match id.
func Dedupe(matches []Match) []Match {
	seen := make(map[int64]struct{}, len(matches))
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}

func teamView(p Participation) TeamView {
	id := p.Department.ID
	return TeamView{
		ID:      &id,
		Name:    p.Department.Name,
		NameEng: p.Department.NameEng,
		Logo:    medialink.ToEmbeddable(p.Department.LogoURL),
		LogoRaw: p.Department.LogoURL,
		Score:   p.Score,
	}
}
