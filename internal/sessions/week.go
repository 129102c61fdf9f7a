package sessions

import "time"

// CivilDate returns the calendar date of t in loc, as midnight UTC. That is
// the representation pgx uses for DATE columns.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart is the Monday of the week containing t, in loc.
func WeekStart(t time.Time, loc *time.Location) time.Time {
	date := CivilDate(t, loc)
	// Sunday is 0, Monday 1
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// WeekEnd is the exclusive end of the week starting at start.
func WeekEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 7)
}
