package schedule

import (
	"reflect"
	"testing"
)

func TestGenerateSlots_HourGrid(t *testing.T) {
	got := GenerateSlots("09:00", "18:00", 60)
	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlots_WindowTooShort(t *testing.T) {
	if got := GenerateSlots("09:00", "09:30", 60); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestGenerateSlots_BadInput(t *testing.T) {
	if got := GenerateSlots("09:00", "18:00", 0); got != nil {
		t.Fatalf("expected nil for zero interval, got %v", got)
	}
	if got := GenerateSlots("9am", "18:00", 60); got != nil {
		t.Fatalf("expected nil for malformed start, got %v", got)
	}
}

func TestFilterSlots_DurationFit(t *testing.T) {
	candidates := []string{"17:30"}

	long := FilterSlots(candidates, "18:00", 60, nil, "")
	if len(long) != 1 || long[0].Available {
		t.Fatalf("60min service at 17:30 must not fit before 18:00: %+v", long)
	}

	short := FilterSlots(candidates, "18:00", 30, nil, "")
	if len(short) != 1 || !short[0].Available {
		t.Fatalf("30min service at 17:30 must fit before 18:00: %+v", short)
	}
	if short[0].End != "18:00" {
		t.Fatalf("expected slot end 18:00, got %s", short[0].End)
	}
}

func TestFilterSlots_OverlapRejection(t *testing.T) {
	busy := []Interval{{Start: "10:00", End: "10:30"}}

	got := FilterSlots([]string{"10:15"}, "18:00", 15, busy, "")
	if got[0].Available {
		t.Fatalf("10:15 overlaps booking 10:00-10:30, must be unavailable")
	}

	got = FilterSlots([]string{"10:30"}, "18:00", 30, busy, "")
	if !got[0].Available {
		t.Fatalf("10:30 touches booking end only, half-open intervals must not conflict")
	}
}

func TestFilterSlots_PastTime(t *testing.T) {
	got := FilterSlots([]string{"14:00", "15:00"}, "18:00", 30, nil, "14:05")
	if got[0].Available {
		t.Fatalf("14:00 is before current time 14:05, must be unavailable")
	}
	if !got[1].Available {
		t.Fatalf("15:00 is after current time 14:05, must be available")
	}

	// Future dates pass now="" and are never filtered by the clock.
	future := FilterSlots([]string{"14:00"}, "18:00", 30, nil, "")
	if !future[0].Available {
		t.Fatalf("future-date slot must not be filtered by current time")
	}
}

func TestFilterSlots_KeepsUnavailableInList(t *testing.T) {
	busy := []Interval{{Start: "09:00", End: "10:00"}}
	got := FilterSlots([]string{"09:00", "10:00"}, "11:00", 60, busy, "")
	if len(got) != 2 {
		t.Fatalf("unavailable slots must stay in the list, got %d entries", len(got))
	}
	if got[0].Available || !got[1].Available {
		t.Fatalf("expected [unavailable, available], got %+v", got)
	}
}

func TestMinuteOfDayRoundTrip(t *testing.T) {
	for _, hm := range []string{"00:00", "09:05", "23:59"} {
		m, err := MinuteOfDay(hm)
		if err != nil {
			t.Fatalf("MinuteOfDay(%q): %v", hm, err)
		}
		if HHMM(m) != hm {
			t.Fatalf("round trip %q -> %d -> %q", hm, m, HHMM(m))
		}
	}
	if _, err := MinuteOfDay("25:00"); err == nil {
		t.Fatalf("expected error for 25:00")
	}
}
