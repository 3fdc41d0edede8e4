package kernel

import (
	"fmt"
	"strings"
	"time"

	"repairshop/internal/pkg/errs"
)

const (
	// DateLayout is the wire and storage form of the date half of a stamp.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire and storage form of the time half of a stamp.
	ClockLayout = "15:04"
)

// Stamp is a (date, time-of-day) pair recording when an order event happened.
// Each half may be unset independently. Dates keep day precision and times
// keep minute precision.
type Stamp struct {
	date    time.Time
	hasDate bool
	clock   string
}

// StampAt returns a complete stamp for t.
func StampAt(t time.Time) Stamp {
	return Stamp{
		date:    truncateDay(t),
		hasDate: true,
		clock:   t.Format(ClockLayout),
	}
}

// NewStamp builds a stamp from optional halves. Nil date and empty clock mean
// unset. The clock accepts "HH:MM" or "HH:MM:SS"; seconds are dropped.
func NewStamp(date *time.Time, clock string) (Stamp, error) {
	s := Stamp{}
	if date != nil {
		s.date = truncateDay(*date)
		s.hasDate = true
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return s, nil
	}

	normalized, err := normalizeClock(clock)
	if err != nil {
		return Stamp{}, err
	}
	s.clock = normalized
	return s, nil
}

// ParseStamp builds a stamp from its textual halves ("2024-01-31", "14:05").
func ParseStamp(date, clock string) (Stamp, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return NewStamp(nil, clock)
	}

	d, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return Stamp{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return NewStamp(&d, clock)
}

func normalizeClock(clock string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("time", fmt.Errorf("%q is not HH:MM", clock))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsZero reports whether both halves are unset.
func (s Stamp) IsZero() bool {
	return !s.hasDate && s.clock == ""
}

// IsComplete reports whether both halves are set.
func (s Stamp) IsComplete() bool {
	return s.hasDate && s.clock != ""
}

// Date returns the date half, or nil when unset.
func (s Stamp) Date() *time.Time {
	if !s.hasDate {
		return nil
	}
	d := s.date
	return &d
}

// Clock returns the time half as "HH:MM", or "" when unset.
func (s Stamp) Clock() string {
	return s.clock
}

// DateString returns the date half as "YYYY-MM-DD", or "" when unset.
func (s Stamp) DateString() string {
	if !s.hasDate {
		return ""
	}
	return s.date.Format(DateLayout)
}

// Fill sets whichever halves are unset from now. Set halves are kept.
func (s Stamp) Fill(now time.Time) Stamp {
	if !s.hasDate {
		s.date = truncateDay(now)
		s.hasDate = true
	}
	if s.clock == "" {
		s.clock = now.Format(ClockLayout)
	}
	return s
}

// Override returns s with every half that is set in other replaced by it.
func (s Stamp) Override(other Stamp) Stamp {
	if other.hasDate {
		s.date = other.date
		s.hasDate = true
	}
	if other.clock != "" {
		s.clock = other.clock
	}
	return s
}

// Equal compares both halves; dates compare by calendar day.
func (s Stamp) Equal(other Stamp) bool {
	return s.DateString() == other.DateString() && s.clock == other.clock
}

func (s Stamp) String() string {
	return strings.TrimSpace(s.DateString() + " " + s.clock)
}
