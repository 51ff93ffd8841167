package schedule

// Interval is a half-open [Start, End) time range within one day.
type Interval struct {
	Start string
	End   string
}

// Slot is a candidate booking start. Unavailable slots stay in the
// list with Available=false so callers can render them struck-through.
type Slot struct {
	Start     string `json:"start_time"`
	End       string `json:"end_time"`
	Available bool   `json:"available"`
}

// GenerateSlots enumerates grid start times between windowStart and
// windowEnd by repeated addition of intervalMinutes, keeping only
// starts where start + interval still fits inside the window. It does
// not know about service durations or existing bookings.
func GenerateSlots(windowStart, windowEnd string, intervalMinutes int) []string {
	if intervalMinutes <= 0 {
		return nil
	}
	start, err := MinuteOfDay(windowStart)
	if err != nil {
		return nil
	}
	end, err := MinuteOfDay(windowEnd)
	if err != nil {
		return nil
	}

	var out []string
	for cur := start; cur+intervalMinutes <= end; cur += intervalMinutes {
		out = append(out, HHMM(cur))
	}
	return out
}

// FilterSlots marks each candidate start with whether a service of
// durationMinutes could begin there. A slot is unavailable when the
// service would run past windowEnd, when it overlaps a busy interval
// under half-open semantics, or when now is set (same-day query) and
// the start is not strictly after it.
func FilterSlots(candidates []string, windowEnd string, durationMinutes int, busy []Interval, now string) []Slot {
	endOfWindow, err := MinuteOfDay(windowEnd)
	if err != nil || durationMinutes <= 0 {
		return nil
	}

	nowMin := -1
	if now != "" {
		if m, err := MinuteOfDay(now); err == nil {
			nowMin = m
		}
	}

	type busyMin struct{ start, end int }
	taken := make([]busyMin, 0, len(busy))
	for _, b := range busy {
		s, err1 := MinuteOfDay(b.Start)
		e, err2 := MinuteOfDay(b.End)
		if err1 != nil || err2 != nil {
			continue
		}
		taken = append(taken, busyMin{s, e})
	}

	slots := make([]Slot, 0, len(candidates))
	for _, c := range candidates {
		start, err := MinuteOfDay(c)
		if err != nil {
			continue
		}
		end := start + durationMinutes

		available := end <= endOfWindow
		if available {
			for _, b := range taken {
				if start < b.end && end > b.start {
					available = false
					break
				}
			}
		}
		if available && nowMin >= 0 && start <= nowMin {
			available = false
		}

		slots = append(slots, Slot{
			Start:     c,
			End:       HHMM(end),
			Available: available,
		})
	}
	return slots
}
