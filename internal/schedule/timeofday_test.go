package schedule

import "testing"

func TestMinuteOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:05", 545},
		{"14:30", 870},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := MinuteOfDay(tc.in)
		if err != nil {
			t.Fatalf("MinuteOfDay(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("MinuteOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

// Lexicographic order on stored times is only chronological when every
// value is zero-padded, so non-canonical input must fail outright.
func TestMinuteOfDayRejectsNonCanonical(t *testing.T) {
	for _, in := range []string{"9:05", "09:5", "9:5", "009:05", "0905", "24:00", "09:60", "", "09:05:00"} {
		if _, err := MinuteOfDay(in); err == nil {
			t.Errorf("MinuteOfDay(%q) expected error", in)
		}
		if IsValidTime(in) {
			t.Errorf("IsValidTime(%q) = true, want false", in)
		}
	}
}

func TestParseDateRejectsNonCanonical(t *testing.T) {
	if _, err := ParseDate("2026-03-03"); err != nil {
		t.Fatalf("ParseDate canonical: %v", err)
	}

	for _, in := range []string{"2026-3-3", "2026-03-3", "2026-3-03", "03/03/2026", "20260303", ""} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) expected error", in)
		}
	}
}

func TestHHMM(t *testing.T) {
	for _, tc := range []struct {
		minute int
		want   string
	}{
		{0, "00:00"}, {545, "09:05"}, {1439, "23:59"},
	} {
		if got := HHMM(tc.minute); got != tc.want {
			t.Errorf("HHMM(%d) = %q, want %q", tc.minute, got, tc.want)
		}
	}
}
