package engine

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-dob/internal/config"
)

// NextBirthdayCalendar renders the next birthday of res as an iCalendar document holding
// one all-day yearly event with a display alarm the day before.
// now stamps DTSTAMP; it is converted to UTC as the standard requires.
func NextBirthdayCalendar(res Result, summary string, now time.Time) ([]byte, error) {
	if summary == "" {
		summary = config.SummaryNoName
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	birth := res.Birth.Time(time.UTC)
	uid := fmt.Sprintf(config.FormatUID, contactUID(summary, birth), config.ICalDomain)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uid)
	event.Props.SetText(config.PropSummary, summary)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())
	event.Props.Set(dtStamp)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(res.NextBirthday)
	event.Props.Set(dtStart)

	// Set RRULE manually; SetText would escape the rule as TEXT.
	rrule := ical.NewProp(config.PropRRule)
	rrule.Value = config.ICalRRule
	event.Props.Set(rrule)

	addAlarm(event, config.ICalTrigger, summary)
	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
