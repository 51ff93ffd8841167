package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salonbook/salon-api/internal/schedule"
)

// monthDateRange returns the first and last civil date of a month as
// inclusive "YYYY-MM-DD" bounds.
func monthDateRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(schedule.DateLayout), last.Format(schedule.DateLayout)
}

// parseServiceIDs parses a comma-separated service id list from a
// query parameter.
func parseServiceIDs(raw string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid service id %q", part)
		}
		ids = append(ids, uint(id))
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("empty service id list")
	}
	return ids, nil
}
