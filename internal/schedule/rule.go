package schedule

// RuleKind discriminates recurring weekly rules from date-specific
// exceptions. Exactly one of DayOfWeek / Date is meaningful per rule.
type RuleKind int

const (
	Recurring RuleKind = iota
	DateSpecific
)

type Rule struct {
	ID          uint
	Kind        RuleKind
	DayOfWeek   int    // Recurring only, Sunday = 0
	Date        string // DateSpecific only, "YYYY-MM-DD"
	Start       string // "HH:MM"
	End         string // "HH:MM"
	Description string
}

// Window is the effective availability for one date.
type Window struct {
	Start  string
	End    string
	Closed bool
}

var closedWindow = Window{Closed: true}

// ResolveWindow picks the effective window for date. A date-specific
// exception always wins over the recurring weekday rule; an exception
// with start == end (the "00:00" sentinel) means the day is closed.
// No matching rule, an empty date, or a malformed date all resolve to
// closed rather than an error.
func ResolveWindow(rules []Rule, date string) Window {
	if date == "" {
		return closedWindow
	}
	weekday, err := Weekday(date)
	if err != nil {
		return closedWindow
	}

	for _, r := range rules {
		if r.Kind == DateSpecific && r.Date == date {
			if r.Start == r.End {
				return closedWindow
			}
			return Window{Start: r.Start, End: r.End}
		}
	}

	for _, r := range rules {
		if r.Kind == Recurring && r.DayOfWeek == weekday {
			if r.Start == r.End {
				return closedWindow
			}
			return Window{Start: r.Start, End: r.End}
		}
	}

	return closedWindow
}
