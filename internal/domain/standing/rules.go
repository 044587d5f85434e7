package standing

import (
	"sort"

	"github.com/kwucouncil/council-api/internal/domain/department"
	"github.com/kwucouncil/council-api/internal/domain/match"
	"github.com/kwucouncil/council-api/internal/platform/medialink"
)

// DefaultGroup is used for futsal rows stored without a group.
const DefaultGroup = "A조"

// Rank orders by score descending, keeping input order on ties, and assigns
// consecutive ranks from 1. Tied scores still get distinct ranks.
func Rank(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// FromDepartments builds stored-mode entries, keeping department order.
func FromDepartments(departments []department.Department) []Entry {
	out := make([]Entry, 0, len(departments))
	for _, d := range departments {
		out = append(out, entry(d, d.Score))
	}
	return out
}

// Aggregate sums participation scores per department. Only departments with at
// least one contributing participation appear, in department order. Callers
// pass participations of played matches only.
func Aggregate(participations []match.Participation, departments []department.Department) []Entry {
	totals := make(map[int64]int, len(departments))
	for _, p := range participations {
		if p.Department == nil {
			continue
		}
		totals[p.Department.ID] += p.Score
	}

	out := make([]Entry, 0, len(totals))
	for _, d := range departments {
		total, ok := totals[d.ID]
		if !ok {
			continue
		}
		out = append(out, entry(d, total))
	}
	return out
}

// RankGroups ranks each futsal group independently by points, goal
// difference, goals for and wins, all descending.
func RankGroups(rows []FutsalRow) map[string][]FutsalRow {
	groups := make(map[string][]FutsalRow)
	for _, row := range rows {
		if row.GroupName == "" {
			row.GroupName = DefaultGroup
		}
		groups[row.GroupName] = append(groups[row.GroupName], row)
	}

	for name, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			a, b := group[i], group[j]
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			if a.GoalDifference() != b.GoalDifference() {
				return a.GoalDifference() > b.GoalDifference()
			}
			if a.GoalsFor != b.GoalsFor {
				return a.GoalsFor > b.GoalsFor
			}
			return a.Wins > b.Wins
		})
		for i := range group {
			group[i].Rank = i + 1
		}
		groups[name] = group
	}
	return groups
}

func entry(d department.Department, score int) Entry {
	return Entry{
		DepartmentID: d.ID,
		Name:         d.Name,
		NameEng:      d.NameEng,
		Logo:         medialink.ToEmbeddable(d.LogoURL),
		LogoRaw:      d.LogoURL,
		Score:        score,
	}
}
