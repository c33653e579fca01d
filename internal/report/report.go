// Package report turns calculation results and errors into the texts shown by every
// presentation layer.
package report

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/engine"
)

// Row is one labelled line of the result list.
type Row struct {
	Label string
	Value string
}

// Report is everything a presentation layer needs to show a result.
type Report struct {
	Rows []Row

	// Celebrate shows the birthday card.
	Celebrate bool

	// BurstParticles is the confetti size to spawn, 0 when not celebrating.
	BurstParticles int
}

// Message is a user-facing error notice.
type Message struct {
	Title string
	Text  string
}

var generationKeys = map[engine.Generation]string{
	engine.GenerationGreatest:   config.TKeyGenGreatest,
	engine.GenerationSilent:     config.TKeyGenSilent,
	engine.GenerationBabyBoomer: config.TKeyGenBoomer,
	engine.GenerationX:          config.TKeyGenX,
	engine.GenerationMillennial: config.TKeyGenMill,
	engine.GenerationZ:          config.TKeyGenZ,
	engine.GenerationAlpha:      config.TKeyGenAlpha,
}

var lifeStageKeys = map[engine.LifeStage]string{
	engine.StageInfant:    config.TKeyStageInfant,
	engine.StageToddler:   config.TKeyStageToddler,
	engine.StageChild:     config.TKeyStageChild,
	engine.StageTeen:      config.TKeyStageTeen,
	engine.StageAdult:     config.TKeyStageAdult,
	engine.StageMiddleAge: config.TKeyStageMiddle,
	engine.StageSenior:    config.TKeyStageSenior,
}

// Build lays out res as the ordered result rows.
func (c *Catalog) Build(res engine.Result) Report {
	next := res.NextBirthday.Format(config.DateFormatDisplay)
	daysLeft := c.Count(config.TKeyValDays, res.DaysUntilNextBirthday)
	if res.IsToday {
		next = c.Format(config.TKeyValToday, map[string]interface{}{"Date": next})
		daysLeft = c.Text(config.TKeyValBirthdayToday)
	}

	rep := Report{
		Rows: []Row{
			{c.Text(config.TKeyRowAge), c.Count(config.TKeyValYears, res.AgeYears)},
			{c.Text(config.TKeyRowBirthDay), strconv.Itoa(res.Birth.Day())},
			{c.Text(config.TKeyRowBirthMonth), res.MonthName},
			{c.Text(config.TKeyRowBirthYear), strconv.Itoa(res.Birth.Year())},
			{c.Text(config.TKeyRowNextBirthday), next},
			{c.Text(config.TKeyRowDaysLeft), daysLeft},
			{c.Text(config.TKeyRowLifeStage), c.label(lifeStageKeys[res.LifeStage], res.LifeStage.String())},
			{c.Text(config.TKeyRowGeneration), c.label(generationKeys[res.Generation], res.Generation.String())},
			{c.Text(config.TKeyRowZodiacSign), res.Zodiac.String()},
			{c.Text(config.TKeyRowZodiacColor), res.ZodiacColor},
			{c.Text(config.TKeyRowZodiacTraits), res.ZodiacTraits},
		},
		Celebrate: res.IsToday,
	}
	if rep.Celebrate {
		rep.BurstParticles = c.BurstParticles
	}

	slog.Debug(config.LogMsgCalc,
		config.LogKeyComponent, config.CompReport,
		config.LogKeyCount, len(rep.Rows),
		config.LogKeyParticles, rep.BurstParticles,
	)
	return rep
}

// label translates key, or returns fallback when the enum has no key.
func (c *Catalog) label(key, fallback string) string {
	if key == "" {
		return fallback
	}
	return c.Text(key)
}

// Describe maps a calculation error to the notice shown to the user.
// A nil error yields the zero Message.
func (c *Catalog) Describe(err error) Message {
	var title, text string
	switch {
	case err == nil:
		return Message{}
	case errors.Is(err, engine.ErrIncompleteInput):
		title, text = config.TKeyErrIncompleteTitle, config.TKeyErrIncompleteMsg
	case errors.Is(err, engine.ErrFutureDate):
		title, text = config.TKeyErrFutureTitle, config.TKeyErrFutureMsg
	case errors.Is(err, engine.ErrInvalidDate):
		title, text = config.TKeyErrInvalidTitle, config.TKeyErrInvalidMsg
	default:
		title, text = config.TKeyErrGenericTitle, config.TKeyErrGenericMsg
	}
	return Message{Title: c.Text(title), Text: c.Text(text)}
}
