package match

import (
	"strconv"
	"strings"
	"time"
)

// CompositeKey addresses a match as date_periodStart_homeDepartment_awayDepartment.
type CompositeKey struct {
	Date             string
	PeriodStart      int
	HomeDepartmentID int64
	AwayDepartmentID int64
}

// LooksComposite reports whether raw has the shape of a composite key at all.
func LooksComposite(raw string) bool {
	return strings.Contains(raw, "_") && len(strings.Split(raw, "_")) >= 4
}

// ParseCompositeKey requires a YYYY-MM-DD date and integral period and team ids.
// Parts after the fourth are ignored.
func ParseCompositeKey(raw string) (CompositeKey, bool) {
	parts := strings.Split(strings.TrimSpace(raw), "_")
	if len(parts) < 4 {
		return CompositeKey{}, false
	}

	if _, err := time.Parse(time.DateOnly, parts[0]); err != nil {
		return CompositeKey{}, false
	}
	period, err := strconv.Atoi(parts[1])
	if err != nil {
		return CompositeKey{}, false
	}
	home, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return CompositeKey{}, false
	}
	away, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return CompositeKey{}, false
	}

	return CompositeKey{
		Date:             parts[0],
		PeriodStart:      period,
		HomeDepartmentID: home,
		AwayDepartmentID: away,
	}, true
}

func (k CompositeKey) String() string {
	return k.Date + "_" + strconv.Itoa(k.PeriodStart) + "_" +
		strconv.FormatInt(k.HomeDepartmentID, 10) + "_" + strconv.FormatInt(k.AwayDepartmentID, 10)
}

// Select picks the match in the slot whose home and away departments equal the key's teams.
func (k CompositeKey) Select(slot []Match) (Match, bool) {
	for _, m := range slot {
		home, okHome := m.Participant(SideHome)
		away, okAway := m.Participant(SideAway)
		if !okHome || !okAway || home.Department == nil || away.Department == nil {
			continue
		}
		if home.Department.ID == k.HomeDepartmentID && away.Department.ID == k.AwayDepartmentID {
			return m, true
		}
	}
	return Match{}, false
}
