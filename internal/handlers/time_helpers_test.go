package handlers

import "testing"

func TestMonthDateRange(t *testing.T) {
	cases := []struct {
		year, month int
		from, to    string
	}{
		{2026, 3, "2026-03-01", "2026-03-31"},
		{2026, 2, "2026-02-01", "2026-02-28"},
		{2028, 2, "2028-02-01", "2028-02-29"},
		{2026, 12, "2026-12-01", "2026-12-31"},
	}

	for _, tc := range cases {
		from, to := monthDateRange(tc.year, tc.month)
		if from != tc.from || to != tc.to {
			t.Errorf("monthDateRange(%d, %d) = %s..%s, want %s..%s",
				tc.year, tc.month, from, to, tc.from, tc.to)
		}
	}
}

func TestParseServiceIDs(t *testing.T) {
	ids, err := parseServiceIDs("3,1, 7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 1 || ids[2] != 7 {
		t.Errorf("got %v", ids)
	}

	for _, raw := range []string{"", ",,", "1,x", "-2"} {
		if _, err := parseServiceIDs(raw); err == nil {
			t.Errorf("parseServiceIDs(%q) expected error", raw)
		}
	}
}
