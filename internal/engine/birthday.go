package engine

import (
	"math"
	"time"
)

const hoursPerDay = 24

// Age returns the number of completed years between the birth date and today.
// It is 0 on the birth date itself and increments on each anniversary.
// A Feb 29 birthday completes its year on Mar 1 in common years.
func Age(b BirthDate, today time.Time) int {
	ty, tm, td := today.Date()
	age := ty - b.year
	if monthDayBefore(int(tm), td, b.month, b.day) {
		age--
	}
	return age
}

// NextBirthday returns midnight of the next occurrence of (day, month) relative to today,
// in today's location.
//
// If today is the birthday, today is returned. Otherwise this year's occurrence is used
// unless it lies strictly before today, in which case next year's is used.
// Feb 29 in a common year resolves to Mar 1 through time.Date normalization.
func NextBirthday(day, month int, today time.Time) time.Time {
	ty, tm, td := today.Date()
	loc := today.Location()
	todayStart := time.Date(ty, tm, td, 0, 0, 0, 0, loc)

	if int(tm) == month && td == day {
		return todayStart
	}

	candidate := time.Date(ty, time.Month(month), day, 0, 0, 0, 0, loc)
	if candidate.Before(todayStart) {
		candidate = time.Date(ty+1, time.Month(month), day, 0, 0, 0, 0, loc)
	}
	return candidate
}

// DaysUntil returns the whole calendar days from today to target, ignoring time of day
// and DST. It never returns a negative value.
func DaysUntil(today, target time.Time) int {
	a := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)

	days := int(math.Round(b.Sub(a).Hours() / hoursPerDay))
	if days < 0 {
		return 0
	}
	return days
}
