package match

import "testing"

func dept(id int64, name string) *Team {
	return &Team{ID: id, Name: name, LogoURL: "https://drive.google.com/file/d/LOGO" + name + "xxxxxxxx/view"}
}

func TestNormalize_WinnerRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		played bool
		home   int
		away   int
		want   *Winner
	}{
		{name: "played draw has no winner", played: true, home: 3, away: 3},
		{name: "unplayed ignores score difference", played: false, home: 5, away: 1},
		{name: "home wins", played: true, home: 2, away: 1, want: ptr(WinnerTeam1)},
		{name: "away wins", played: true, home: 0, away: 4, want: ptr(WinnerTeam2)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			view := Normalize(Match{
				ID:       1,
				IsPlayed: tc.played,
				Participations: []Participation{
					{Side: SideAway, Score: tc.away, Department: dept(20, "B")},
					{Side: SideHome, Score: tc.home, Department: dept(10, "A")},
				},
			})

			if (view.Win == nil) != (tc.want == nil) || (view.Win != nil && *view.Win != *tc.want) {
				t.Fatalf("unexpected winner: got %v want %v", view.Win, tc.want)
			}
			if view.Team1.ID == nil || *view.Team1.ID != 10 {
				t.Fatalf("team1 must be the home side, got %+v", view.Team1)
			}
		})
	}
}

func TestNormalize_MissingSideUsesPlaceholder(t *testing.T) {
	t.Parallel()

	view := Normalize(Match{
		ID:       2,
		IsPlayed: true,
		Participations: []Participation{
			{Side: SideHome, Score: 3, Department: dept(10, "A")},
			{Side: SideAway, Score: 1, Department: nil},
		},
	})

	if view.Team2 != Placeholder() {
		t.Fatalf("expected placeholder team2, got %+v", view.Team2)
	}
	if view.Win != nil {
		t.Fatalf("winner requires both sides, got %v", *view.Win)
	}
	if view.Team1.Logo != "https://lh3.googleusercontent.com/d/LOGOAxxxxxxxx" {
		t.Fatalf("unexpected embeddable logo: %s", view.Team1.Logo)
	}
	if view.Team1.LogoRaw == view.Team1.Logo {
		t.Fatalf("logo_raw must keep the stored url")
	}
}

func TestDedupe_KeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	got := Dedupe([]Match{{ID: 3}, {ID: 1}, {ID: 3}, {ID: 2}, {ID: 1}})
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: %d", len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %d want %d", i, got[i].ID, id)
		}
	}
}

func ptr(w Winner) *Winner { return &w }
