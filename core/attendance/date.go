package attendance

import (
	"errors"
	"time"

	"github.com/trezcool/chamada/core"
)

const (
	dateLayout = "2006-01-02"

	// MaxRangeDays bounds the number of days a DateRange may span.
	MaxRangeDays = 366
)

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange  = errors.New("invalid date range, start is after end")
	ErrRangeTooLarge = errors.New("date range is too large")
)

// DateKey is a calendar day in its canonical YYYY-MM-DD form.
type DateKey string

// NewDateKey returns the calendar day of `t` as seen in t's own location;
// the time of day is dropped and no timezone conversion happens.
// The same instant may fall on different days in different locations, so callers should
// convert `t` to the school's timezone first (t.In(loc)).
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(dateLayout))
}

// Today is the current calendar day, in local time.
func Today() DateKey {
	return NewDateKey(time.Now())
}

func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateLayout, core.CleanString(s))
	if err != nil {
		return "", ErrInvalidDate
	}
	return NewDateKey(t), nil
}

func (d DateKey) String() string { return string(d) }

// Time returns midnight UTC of the day. The zero DateKey yields the zero time.Time.
func (d DateKey) Time() time.Time {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

func (d DateKey) IsZero() bool { return d == "" }

// AddDays returns the day `n` days after d (before, if n < 0).
func (d DateKey) AddDays(n int) DateKey {
	return NewDateKey(d.Time().AddDate(0, 0, n))
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From DateKey `json:"from"`
	To   DateKey `json:"to"`
}

func NewDateRange(from, to DateKey) (DateRange, error) {
	if from.Time().IsZero() || to.Time().IsZero() {
		return DateRange{}, ErrInvalidDate
	}
	if from > to {
		return DateRange{}, ErrInvalidRange
	}
	if to.Time().Sub(from.Time()) >= MaxRangeDays*24*time.Hour {
		return DateRange{}, ErrRangeTooLarge
	}
	return DateRange{From: from, To: to}, nil
}

func SingleDay(d DateKey) DateRange {
	return DateRange{From: d, To: d}
}

// Contains relies on YYYY-MM-DD keys sorting chronologically.
func (r DateRange) Contains(d DateKey) bool {
	return d >= r.From && d <= r.To
}

// Days lists every day of the range in ascending order.
func (r DateRange) Days() []DateKey {
	from, to := r.From.Time(), r.To.Time()
	if from.IsZero() || to.IsZero() || from.After(to) {
		return nil
	}
	days := make([]DateKey, 0, int(to.Sub(from).Hours()/24)+1)
	for t := from; !t.After(to); t = t.AddDate(0, 0, 1) {
		days = append(days, NewDateKey(t))
	}
	return days
}
