package schedule

import (
	"fmt"
	"sort"
)

// ExceptionDay is one stored closed-day row.
type ExceptionDay struct {
	ID          uint
	Date        string
	Description string
}

// ExceptionGroup is the display form of a run of consecutive closed
// days sharing a description. It is derived on every read, never
// stored.
type ExceptionGroup struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	IDs         []uint `json:"ids"`
}

// ExpandExceptionRange turns an inclusive [startDate, endDate] range
// into one closed-day rule per calendar day, all sharing description.
func ExpandExceptionRange(startDate, endDate, description string) ([]Rule, error) {
	from, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	to, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s before start date %s", endDate, startDate)
	}

	var rules []Rule
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		rules = append(rules, Rule{
			Kind:        DateSpecific,
			Date:        d.Format(DateLayout),
			Start:       ClosedTime,
			End:         ClosedTime,
			Description: description,
		})
	}
	return rules, nil
}

// GroupExceptions coalesces per-day rows into display ranges. A row
// extends the open group only when its date is exactly one day after
// the previous row and the description matches exactly; a gap or a
// description change starts a new group.
func GroupExceptions(days []ExceptionDay) []ExceptionGroup {
	if len(days) == 0 {
		return nil
	}

	sorted := make([]ExceptionDay, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	var groups []ExceptionGroup
	cur := ExceptionGroup{
		StartDate:   sorted[0].Date,
		EndDate:     sorted[0].Date,
		Description: sorted[0].Description,
		IDs:         []uint{sorted[0].ID},
	}

	for _, d := range sorted[1:] {
		next, err := NextDay(cur.EndDate)
		if err == nil && d.Date == next && d.Description == cur.Description {
			cur.EndDate = d.Date
			cur.IDs = append(cur.IDs, d.ID)
			continue
		}
		groups = append(groups, cur)
		cur = ExceptionGroup{
			StartDate:   d.Date,
			EndDate:     d.Date,
			Description: d.Description,
			IDs:         []uint{d.ID},
		}
	}

	return append(groups, cur)
}
