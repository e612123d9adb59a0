package domain

import "strings"

// Day is a lowercase day-of-week token ("sunday".."saturday").
type Day string

// Days of the week, Sunday first to match time.Weekday ordering.
const (
	Sunday    Day = "sunday"
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
)

// Days lists all recognized day tokens in week order.
var Days = [7]Day{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseDay parses a day token case-insensitively.
func ParseDay(s string) (Day, bool) {
	d := Day(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Days {
		if d == known {
			return d, true
		}
	}
	return "", false
}

// Hours is one day's opening window, both values "HH:MM" display strings.
type Hours struct {
	Open  string
	Close string
}

// Schedule maps a day to its hours. A nil entry or a missing key both mean
// closed that day.
type Schedule map[Day]*Hours

// OpenOn reports whether the schedule has a non-nil entry for the day.
func (s Schedule) OpenOn(d Day) bool {
	h, ok := s[d]
	return ok && h != nil
}
