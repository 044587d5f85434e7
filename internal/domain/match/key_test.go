package match

import "testing"

func TestParseCompositeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		ok   bool
		want CompositeKey
	}{
		{raw: "2025-05-20_3_10_20", ok: true, want: CompositeKey{Date: "2025-05-20", PeriodStart: 3, HomeDepartmentID: 10, AwayDepartmentID: 20}},
		{raw: "2025-05-20_3_10_20_extra", ok: true, want: CompositeKey{Date: "2025-05-20", PeriodStart: 3, HomeDepartmentID: 10, AwayDepartmentID: 20}},
		{raw: "2025-05-20_3_10"},
		{raw: "2025-13-01_3_10_20"},
		{raw: "2025-05-20_x_10_20"},
		{raw: "2025-05-20_3_a_20"},
		{raw: "42"},
	}

	for _, tc := range tests {
		got, ok := ParseCompositeKey(tc.raw)
		if ok != tc.ok {
			t.Fatalf("ParseCompositeKey(%q) ok=%v, want %v", tc.raw, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseCompositeKey(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestCompositeKey_Select(t *testing.T) {
	t.Parallel()

	slot := []Match{
		{ID: 7, Participations: []Participation{
			{Side: SideHome, Department: &Team{ID: 11}},
			{Side: SideAway, Department: &Team{ID: 12}},
		}},
		{ID: 8, Participations: []Participation{
			{Side: SideHome, Department: &Team{ID: 10}},
			{Side: SideAway, Department: &Team{ID: 20}},
		}},
	}

	key := CompositeKey{Date: "2025-05-20", PeriodStart: 3, HomeDepartmentID: 10, AwayDepartmentID: 20}
	m, ok := key.Select(slot)
	if !ok || m.ID != 8 {
		t.Fatalf("expected match 8, got %v %+v", ok, m)
	}

	swapped := CompositeKey{Date: key.Date, PeriodStart: 3, HomeDepartmentID: 20, AwayDepartmentID: 10}
	if _, ok := swapped.Select(slot); ok {
		t.Fatalf("sides must match exactly")
	}
	if key.String() != "2025-05-20_3_10_20" {
		t.Fatalf("unexpected key string: %s", key)
	}
}

func TestLooksComposite(t *testing.T) {
	t.Parallel()

	if !LooksComposite("a_b_c_d") || LooksComposite("a_b_c") || LooksComposite("12") {
		t.Fatalf("unexpected composite detection")
	}
}
