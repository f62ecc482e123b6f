package timegrid

import (
	"time"

	"salon-booking/internal/pkg/errs"
)

const layout = "15:04"

// Grid is the candidate slot grid for a business day: every time of day from
// Open to Close (inclusive) in Step increments, as zero-padded "HH:MM"
// strings. Comparisons throughout the system happen on these strings, never
// on full timestamps.
type Grid struct {
	open  time.Time
	close time.Time
	step  time.Duration
}

func New(open, close string, step time.Duration) (Grid, error) {
	o, err := time.Parse(layout, open)
	if err != nil {
		return Grid{}, errs.Wrap(err, "invalid grid open time")
	}
	c, err := time.Parse(layout, close)
	if err != nil {
		return Grid{}, errs.Wrap(err, "invalid grid close time")
	}
	if !o.Before(c) {
		return Grid{}, errs.New("grid open time must be before close time")
	}
	if step <= 0 {
		return Grid{}, errs.New("grid step must be positive")
	}
	return Grid{open: o, close: c, step: step}, nil
}

// Slots returns the ordered candidate times. The result is freshly allocated
// on each call so callers may keep or mutate it.
func (g Grid) Slots() []string {
	var slots []string
	for t := g.open; !t.After(g.close); t = t.Add(g.step) {
		slots = append(slots, t.Format(layout))
	}
	return slots
}

// Contains reports whether the "HH:MM" time falls exactly on a grid slot.
func (g Grid) Contains(timeOfDay string) bool {
	for _, s := range g.Slots() {
		if s == timeOfDay {
			return true
		}
	}
	return false
}

// Subtract returns the grid slots not present in occupied, preserving grid
// order. Occupied times off the grid are ignored.
func (g Grid) Subtract(occupied []string) []string {
	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	slots := g.Slots()
	free := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			free = append(free, s)
		}
	}
	return free
}

// ParseTimeOfDay validates an "HH:MM" string and returns it normalized.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", errs.Mark(err, errs.ErrInvalidTime)
	}
	return t.Format(layout), nil
}

// ParseDate validates a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errs.Mark(err, errs.ErrInvalidDate)
	}
	return d, nil
}
