package utils

import "time"

const DateLayout = "2006-01-02" // yyyy-MM-dd

// Today formats the local calendar date. Formatting (never UTC conversion)
// keeps the date from shifting across midnight boundaries.
func Today() string {
	return time.Now().Format(DateLayout)
}

// WeekRange returns the Monday and Sunday of the week containing t, as
// yyyy-MM-dd strings.
func WeekRange(t time.Time) (string, string) {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started 6 days earlier
	}
	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(DateLayout), sunday.Format(DateLayout)
}

// PreviousWeekRange returns the Monday and Sunday of the week before the one
// containing t.
func PreviousWeekRange(t time.Time) (string, string) {
	return WeekRange(t.AddDate(0, 0, -7))
}
