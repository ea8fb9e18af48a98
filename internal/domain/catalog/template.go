package catalog

import (
	"fmt"
	"sort"
	"time"

	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultWindowDays = 60
	dateKeyLayout     = "2006-01-02"
)

var (
	ErrInvalidTimeOfDay = errs.Validation(errs.New("time of day must be HH:MM"))
	ErrWrongWeekday     = errs.Validation(errs.New("session does not run on the requested date"))
	ErrInvalidRange     = errs.Validation(errs.New("end date must not be before start date"))
)

// Template is a weekly recurring session. DayOfWeek follows time.Weekday (Sunday = 0).
type Template struct {
	ID          uuid.UUID
	TypeID      uuid.UUID
	TypeName    string
	DayOfWeek   time.Weekday
	StartTime   string
	EndTime     string
	MaxCapacity int
	IsPrivate   bool
}

// Instance is a template expanded onto one date.
type Instance struct {
	Template
	Date     time.Time
	StartsAt time.Time
}

func (t Template) Occurs(date time.Time) bool {
	return date.Weekday() == t.DayOfWeek
}

// CheckDate rejects a date the template does not run on.
func (t Template) CheckDate(date time.Time) error {
	if !t.Occurs(date) {
		return ErrWrongWeekday
	}
	return nil
}

// StartsAt places the template's start time on date in loc.
func (t Template) StartsAt(date time.Time, loc *time.Location) (time.Time, error) {
	h, m, err := parseClock(t.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, loc), nil
}

// Expand lists dated instances of templates between from and to inclusive, keyed by YYYY-MM-DD.
// Dates before today are skipped; today only keeps sessions that have not started.
func Expand(templates []Template, from, to, now time.Time, loc *time.Location) (map[string][]Instance, error) {
	start := dateIn(from, loc)
	end := dateIn(to, loc)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	today := dateIn(now, loc)

	out := make(map[string][]Instance)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Before(today) {
			continue
		}
		for _, t := range templates {
			if !t.Occurs(d) {
				continue
			}
			startsAt, err := t.StartsAt(d, loc)
			if err != nil {
				return nil, err
			}
			if d.Equal(today) && !startsAt.After(now) {
				continue
			}
			key := d.Format(dateKeyLayout)
			out[key] = append(out[key], Instance{Template: t, Date: d, StartsAt: startsAt})
		}
	}
	for k := range out {
		sort.Slice(out[k], func(i, j int) bool { return out[k][i].StartTime < out[k][j].StartTime })
	}
	return out, nil
}

func dateIn(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

func parseClock(s string) (int, int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, 0, ErrInvalidTimeOfDay
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, ErrInvalidTimeOfDay
	}
	return h, m, nil
}
