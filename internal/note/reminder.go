package note

import "time"

// RepeatMode controls how a reminder recurs after firing.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatDaily
	RepeatWeekly
	RepeatMonthly
	RepeatYearly
)

func (r RepeatMode) String() string {
	switch r {
	case RepeatNone:
		return "none"
	case RepeatDaily:
		return "daily"
	case RepeatWeekly:
		return "weekly"
	case RepeatMonthly:
		return "monthly"
	case RepeatYearly:
		return "yearly"
	}
	return "unknown"
}

// Reminder is a scheduled notification attached to a note. Firing the
// notification is the host application's concern.
type Reminder struct {
	At     time.Time
	Repeat RepeatMode
}

// Equal reports whether two reminder pointers describe the same schedule.
// Both nil counts as equal.
func (r *Reminder) Equal(other *Reminder) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.At.Equal(other.At) && r.Repeat == other.Repeat
}
