package schedule

import (
	"fmt"
	"time"
)

const (
	TimeLayout = "15:04"
	DateLayout = "2006-01-02"
)

// ClosedTime is the sentinel exception rows use for a whole closed day
// (start == end == "00:00").
const ClosedTime = "00:00"

// MinuteOfDay parses a canonical "HH:MM" string into minutes since
// midnight. Unpadded forms like "9:05" are rejected, not normalized:
// stored times are compared lexicographically, so every accepted value
// must already be zero-padded.
func MinuteOfDay(hm string) (int, error) {
	if len(hm) != len(TimeLayout) {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// HHMM formats minutes since midnight back into "HH:MM".
func HHMM(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// IsValidTime reports whether hm is a well-formed "HH:MM" string.
func IsValidTime(hm string) bool {
	_, err := MinuteOfDay(hm)
	return err == nil
}

// ParseDate parses a canonical civil "YYYY-MM-DD" date. The result
// carries no timezone meaning; it exists only for weekday and day
// arithmetic. As with times, unpadded dates are rejected so that
// string order stays chronological.
func ParseDate(date string) (time.Time, error) {
	if len(date) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", date)
	}
	return d, nil
}

// Weekday returns the day of week for a civil date, Sunday = 0.
func Weekday(date string) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}

// NextDay returns the civil date one calendar day after date.
func NextDay(date string) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, 1).Format(DateLayout), nil
}
