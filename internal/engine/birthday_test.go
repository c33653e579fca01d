package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dob/internal/engine"
)

func TestAge_Anniversaries(t *testing.T) {
	tests := []struct {
		name  string
		birth engine.DateTriple
		today time.Time
		want  int
	}{
		{"Birth day", engine.DateTriple{Day: 15, Month: 8, Year: 2001}, time.Date(2001, 8, 15, 23, 0, 0, 0, time.UTC), 0},
		{"Day before first anniversary", engine.DateTriple{Day: 15, Month: 8, Year: 2001}, time.Date(2002, 8, 14, 0, 0, 0, 0, time.UTC), 0},
		{"First anniversary", engine.DateTriple{Day: 15, Month: 8, Year: 2001}, time.Date(2002, 8, 15, 0, 0, 0, 0, time.UTC), 1},
		{"Leapling on Feb 28 common year", engine.DateTriple{Day: 29, Month: 2, Year: 2000}, time.Date(2001, 2, 28, 0, 0, 0, 0, time.UTC), 0},
		{"Leapling on Mar 1 common year", engine.DateTriple{Day: 29, Month: 2, Year: 2000}, time.Date(2001, 3, 1, 0, 0, 0, 0, time.UTC), 1},
		{"Leapling on Feb 29", engine.DateTriple{Day: 29, Month: 2, Year: 2000}, time.Date(2004, 2, 29, 0, 0, 0, 0, time.UTC), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.Validate(tt.birth, tt.today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, engine.Age(b, tt.today))
		})
	}
}

// TestAge_Monotonic walks twenty years day by day: age never decreases and only steps by
// one, on the anniversary.
func TestAge_Monotonic(t *testing.T) {
	for _, triple := range []engine.DateTriple{
		{Day: 15, Month: 8, Year: 2001},
		{Day: 29, Month: 2, Year: 2000},
		{Day: 31, Month: 12, Year: 1999},
	} {
		start := time.Date(triple.Year, time.Month(triple.Month), triple.Day, 12, 0, 0, 0, time.UTC)
		b, err := engine.Validate(triple, start)
		require.NoError(t, err)

		prev := engine.Age(b, start)
		require.Equal(t, 0, prev)

		for day := start.AddDate(0, 0, 1); day.Year() < triple.Year+20; day = day.AddDate(0, 0, 1) {
			age := engine.Age(b, day)
			if age != prev {
				require.Equalf(t, prev+1, age, "jump on %s", day.Format(time.DateOnly))
				next := engine.NextBirthday(triple.Day, triple.Month, day)
				require.Equalf(t, 0, engine.DaysUntil(day, next), "step off the anniversary on %s", day.Format(time.DateOnly))
			}
			prev = age
		}
	}
}

// TestNextBirthday_Properties checks every (month, day) of a leap year against three
// years of evaluation days.
func TestNextBirthday_Properties(t *testing.T) {
	from := time.Date(2023, 1, 1, 15, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for today := from; today.Before(to); today = today.AddDate(0, 0, 1) {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= engine.DaysInMonth(month, 2000); day++ {
				next := engine.NextBirthday(day, month, today)
				days := engine.DaysUntil(today, next)

				if days < 0 || days > 366 {
					t.Fatalf("%s -> %02d-%02d: %d days out of range", today.Format(time.DateOnly), month, day, days)
				}

				// A leapling's occurrence in a common year is Mar 1.
				matches := int(today.Month()) == month && today.Day() == day
				if month == 2 && day == 29 && !engine.IsLeap(today.Year()) {
					matches = today.Month() == time.March && today.Day() == 1
				}
				if (days == 0) != matches {
					t.Fatalf("%s -> %02d-%02d: days=%d match=%v", today.Format(time.DateOnly), month, day, days, matches)
				}
			}
		}
	}
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, engine.DaysUntil(today, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, engine.DaysUntil(today, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)), "Time of day is ignored")
	assert.Equal(t, 365, engine.DaysUntil(today, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, engine.DaysUntil(today, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)), "Never negative")
}

func TestDaysUntil_IgnoresZoneOffsets(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	today := time.Date(2025, 10, 25, 23, 0, 0, 0, paris)
	target := time.Date(2025, 10, 27, 0, 0, 0, 0, paris)

	assert.Equal(t, 2, engine.DaysUntil(today, target))
}
