package engine_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dob/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func calculatorAt(t time.Time) *engine.Calculator {
	return &engine.Calculator{Clock: MockClock{CurrentTime: t}}
}

func mustBirth(t *testing.T, day, month, year int) engine.BirthDate {
	t.Helper()
	b, err := engine.Validate(engine.DateTriple{Day: day, Month: month, Year: year}, time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return b
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestCalculate_LeaplingScenario(t *testing.T) {
	// Scenario: born Feb 29th 2000, evaluated on March 1st 2024.
	calc := calculatorAt(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC))

	got, err := calc.Calculate(engine.Input{Day: "29", Month: "2", Year: "2000"})
	require.NoError(t, err)

	want := engine.Result{
		Birth:                 mustBirth(t, 29, 2, 2000),
		AgeYears:              24,
		MonthName:             "February",
		NextBirthday:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), // 2025 is common: Feb 29 -> Mar 1
		DaysUntilNextBirthday: 365,
		IsToday:               false,
		LifeStage:             engine.StageAdult,
		Generation:            engine.GenerationMillennial,
		Zodiac:                engine.Pisces,
		ZodiacColor:           "Seafoam Green",
		ZodiacTraits:          "Likeable, energetic, passionate, sensitive.",
	}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(engine.BirthDate{})); diff != "" {
		t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_BirthdayToday(t *testing.T) {
	calc := calculatorAt(time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC))

	got, err := calc.Calculate(engine.Input{Day: "15", Month: "6", Year: "1990"})
	require.NoError(t, err)

	assert.True(t, got.IsToday)
	assert.Equal(t, 0, got.DaysUntilNextBirthday)
	assert.Equal(t, 35, got.AgeYears)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got.NextBirthday, "Today takes precedence over next year")
	assert.Equal(t, engine.Gemini, got.Zodiac)
}

func TestCalculate_BornToday(t *testing.T) {
	calc := calculatorAt(time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))

	got, err := calc.Calculate(engine.Input{Day: "15", Month: "06", Year: "2025"})
	require.NoError(t, err)

	assert.Equal(t, 0, got.AgeYears)
	assert.True(t, got.IsToday)
	assert.Equal(t, engine.StageInfant, got.LifeStage)
	assert.Equal(t, engine.GenerationAlpha, got.Generation)
}

func TestCalculate_LeaplingCelebratesMarchFirst(t *testing.T) {
	calc := calculatorAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	got, err := calc.Calculate(engine.Input{Day: "29", Month: "2", Year: "2000"})
	require.NoError(t, err)

	assert.True(t, got.IsToday, "Mar 1 is the resolved occurrence in a common year")
	assert.Equal(t, 25, got.AgeYears)
}

func TestCalculate_Errors(t *testing.T) {
	today := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   engine.Input
		wantErr error
	}{
		{"Future date", engine.Input{Day: "15", Month: "6", Year: "2030"}, engine.ErrFutureDate},
		{"Tomorrow", engine.Input{Day: "20", Month: "10", Year: "2026"}, engine.ErrFutureDate},
		{"April 31st", engine.Input{Day: "31", Month: "4", Year: "2000"}, engine.ErrInvalidDate},
		{"Feb 29 common year", engine.Input{Day: "29", Month: "2", Year: "2023"}, engine.ErrInvalidDate},
		{"Month 13", engine.Input{Day: "1", Month: "13", Year: "2000"}, engine.ErrInvalidDate},
		{"Day zero", engine.Input{Day: "0", Month: "1", Year: "2000"}, engine.ErrInvalidDate},
		{"Year zero", engine.Input{Day: "1", Month: "1", Year: "0"}, engine.ErrInvalidDate},
		{"Not a number", engine.Input{Day: "1a", Month: "1", Year: "2000"}, engine.ErrInvalidDate},
		{"Negative", engine.Input{Day: "-3", Month: "1", Year: "2000"}, engine.ErrInvalidDate},
		{"Missing day", engine.Input{Day: "", Month: "1", Year: "2000"}, engine.ErrIncompleteInput},
		{"Missing month", engine.Input{Day: "1", Month: " ", Year: "2000"}, engine.ErrIncompleteInput},
		{"Missing year", engine.Input{Day: "1", Month: "1", Year: ""}, engine.ErrIncompleteInput},
	}

	calc := calculatorAt(today)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Calculate(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCalculate_FutureIsDistinctFromInvalid(t *testing.T) {
	calc := calculatorAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := calc.Calculate(engine.Input{Day: "15", Month: "6", Year: "2030"})
	assert.ErrorIs(t, err, engine.ErrFutureDate)
	assert.NotErrorIs(t, err, engine.ErrInvalidDate)
}

func TestCalculate_NilClockUsesRealTime(t *testing.T) {
	calc := &engine.Calculator{}

	got, err := calc.CalculateTriple(engine.DateTriple{Day: 1, Month: 1, Year: 1970})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.AgeYears, 55)
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2020, 5, 5, 5, 5, 5, 0, time.UTC)
	assert.Equal(t, instant, engine.FixedClock{Instant: instant}.Now())
}
