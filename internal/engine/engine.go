package engine

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-dob/internal/config"
)

// Input holds the three raw fields supplied by an input collector.
// The collector may already filter digits; the Calculator does not rely on it.
type Input struct {
	Day   string
	Month string
	Year  string
}

// Triple parses the fields as base-10 integers.
func (in Input) Triple() (DateTriple, error) {
	day, err := parseField(in.Day)
	if err != nil {
		return DateTriple{}, err
	}
	month, err := parseField(in.Month)
	if err != nil {
		return DateTriple{}, err
	}
	year, err := parseField(in.Year)
	if err != nil {
		return DateTriple{}, err
	}
	return DateTriple{Day: day, Month: month, Year: year}, nil
}

func (in Input) complete() bool {
	return strings.TrimSpace(in.Day) != "" &&
		strings.TrimSpace(in.Month) != "" &&
		strings.TrimSpace(in.Year) != ""
}

func parseField(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidDate, config.ErrNotANumber, s)
	}
	return n, nil
}

// Result is everything derived from one birth date at one evaluation instant.
// It is recomputed on every request and never mutated.
type Result struct {
	Birth                 BirthDate
	AgeYears              int
	MonthName             string
	NextBirthday          time.Time
	DaysUntilNextBirthday int
	IsToday               bool
	LifeStage             LifeStage
	Generation            Generation
	Zodiac                Sign
	ZodiacColor           string
	ZodiacTraits          string
}

// Calculator is the entry point used by every presentation layer.
type Calculator struct {
	Clock Clock // Interface for time mocking.
}

// NewCalculator returns a Calculator on the real clock.
func NewCalculator() *Calculator {
	return &Calculator{Clock: RealClock{}}
}

// Calculate validates the raw input and classifies it.
// Errors wrap ErrIncompleteInput, ErrInvalidDate, ErrFutureDate or ErrAgeComputation.
func (c *Calculator) Calculate(in Input) (Result, error) {
	if !in.complete() {
		c.logRejected(ErrIncompleteInput)
		return Result{}, ErrIncompleteInput
	}

	triple, err := in.Triple()
	if err != nil {
		c.logRejected(err)
		return Result{}, err
	}
	return c.CalculateTriple(triple)
}

// CalculateTriple classifies an already parsed triple.
func (c *Calculator) CalculateTriple(t DateTriple) (Result, error) {
	now := c.Now()

	birth, err := Validate(t, now)
	if err != nil {
		c.logRejected(err)
		return Result{}, err
	}

	age := Age(birth, now)
	if age < 0 {
		err := fmt.Errorf("%w: %d", ErrAgeComputation, age)
		c.logRejected(err)
		return Result{}, err
	}

	next := NextBirthday(birth.Day(), birth.Month(), now)
	days := DaysUntil(now, next)
	sign := ZodiacOf(birth.Day(), birth.Month())

	res := Result{
		Birth:                 birth,
		AgeYears:              age,
		MonthName:             MonthName(birth.Month()),
		NextBirthday:          next,
		DaysUntilNextBirthday: days,
		IsToday:               days == 0,
		LifeStage:             LifeStageOf(age),
		Generation:            GenerationOf(birth.Year()),
		Zodiac:                sign,
		ZodiacColor:           sign.Color(),
		ZodiacTraits:          sign.Traits(),
	}

	slog.Debug(config.MsgCalcDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyAge, res.AgeYears,
		config.LogKeyDaysLeft, res.DaysUntilNextBirthday,
		config.LogKeyZodiac, res.Zodiac.String(),
	)
	if res.IsToday {
		slog.Info(config.MsgBdayToday,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyAge, res.AgeYears,
		)
	}
	return res, nil
}

// Now returns the current instant on the calculator's clock.
func (c *Calculator) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

func (c *Calculator) logRejected(err error) {
	slog.Debug(config.MsgCalcRejected,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyError, err,
	)
}
