package slotkey

import (
	"time"

	"coachbook/internal/pkg/errs"
)

var ErrInvalidCalendar = errs.Class("invalid calendar fields", errs.ErrValidation)

// Calendar is the zone-less wall-clock start of a slot.
type Calendar struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

func NewCalendar(year, month, day, hour, minute int) (Calendar, error) {
	c := Calendar{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
	if err := c.Validate(); err != nil {
		return Calendar{}, err
	}
	return c, nil
}

func (c Calendar) Validate() error {
	if c.Year < 1 || c.Year > 9999 {
		return errs.Wrap(ErrInvalidCalendar, "year out of range")
	}
	if c.Month < 1 || c.Month > 12 {
		return errs.Wrap(ErrInvalidCalendar, "month out of range")
	}
	if c.Hour < 0 || c.Hour > 23 {
		return errs.Wrap(ErrInvalidCalendar, "hour out of range")
	}
	if c.Minute < 0 || c.Minute > 59 {
		return errs.Wrap(ErrInvalidCalendar, "minute out of range")
	}
	// time.Date normalizes overflow (Feb 30 -> Mar 2), so a round trip detects it.
	t := c.Time()
	if t.Year() != c.Year || int(t.Month()) != c.Month || t.Day() != c.Day {
		return errs.Wrap(ErrInvalidCalendar, "day does not exist in month")
	}
	return nil
}

func (c Calendar) Time() time.Time {
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, 0, 0, time.UTC)
}
