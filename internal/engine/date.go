package engine

import (
	"fmt"
	"time"
)

const monthsPerYear = 12

// DateTriple is a raw day/month/year as typed by the user. It has no inherent validity.
type DateTriple struct {
	Day   int
	Month int
	Year  int
}

// BirthDate is a DateTriple that passed Validate: a real calendar date not after the
// evaluation day. The zero value is not a valid birth date.
type BirthDate struct {
	day   int
	month int
	year  int
}

// Day returns the day of the month (1-31).
func (b BirthDate) Day() int { return b.day }

// Month returns the month (1-12).
func (b BirthDate) Month() int { return b.month }

// Year returns the year (>= 1).
func (b BirthDate) Year() int { return b.year }

// Triple returns the underlying day/month/year.
func (b BirthDate) Triple() DateTriple {
	return DateTriple{Day: b.day, Month: b.month, Year: b.year}
}

// Time returns midnight of the birth date in loc.
func (b BirthDate) Time(loc *time.Location) time.Time {
	return time.Date(b.year, time.Month(b.month), b.day, 0, 0, 0, 0, loc)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of month in year, or 0 for a month outside 1-12.
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// Validate proves that t is a real calendar date on or before today's calendar date.
// It returns ErrInvalidDate for impossible dates and ErrFutureDate for dates after today.
// Future dates are rejected, never clamped.
func Validate(t DateTriple, today time.Time) (BirthDate, error) {
	if t.Year < 1 {
		return BirthDate{}, fmt.Errorf("%w: year %d", ErrInvalidDate, t.Year)
	}
	if t.Month < 1 || t.Month > monthsPerYear {
		return BirthDate{}, fmt.Errorf("%w: month %d", ErrInvalidDate, t.Month)
	}
	if dim := DaysInMonth(t.Month, t.Year); t.Day < 1 || t.Day > dim {
		return BirthDate{}, fmt.Errorf("%w: day %d (month %d has %d days in %d)", ErrInvalidDate, t.Day, t.Month, dim, t.Year)
	}

	ty, tm, td := today.Date()
	if compareDates(t.Year, t.Month, t.Day, ty, int(tm), td) > 0 {
		return BirthDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrFutureDate, t.Year, t.Month, t.Day)
	}

	return BirthDate{day: t.Day, month: t.Month, year: t.Year}, nil
}

// MonthName returns the English name of month, or "" outside 1-12.
func MonthName(month int) string {
	if month < 1 || month > monthsPerYear {
		return ""
	}
	return time.Month(month).String()
}

// compareDates orders two calendar dates lexicographically by (year, month, day).
func compareDates(y1, m1, d1, y2, m2, d2 int) int {
	switch {
	case y1 != y2:
		return sign(y1 - y2)
	case m1 != m2:
		return sign(m1 - m2)
	default:
		return sign(d1 - d2)
	}
}

// monthDayBefore reports whether (m1, d1) comes strictly before (m2, d2) within a year.
func monthDayBefore(m1, d1, m2, d2 int) bool {
	return m1 < m2 || (m1 == m2 && d1 < d2)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
