package model

import (
	"errors"
	"jamat/shared/date"
)

var ErrInvertedPeriod = errors.New("start_date must not be after end_date")

// Period is an inclusive range of calendar days.
type Period struct {
	Start date.Date
	End   date.Date
}

func NewPeriod(start, end date.Date) (Period, error) {
	if start.After(end) {
		return Period{}, ErrInvertedPeriod
	}

	return Period{Start: start, End: end}, nil
}

// Overlaps is inclusive on both ends, so periods that share a single day overlap.
func (p Period) Overlaps(other Period) bool {
	return !p.Start.After(other.End) && !p.End.Before(other.Start)
}

func (p Period) Contains(day date.Date) bool {
	return !day.Before(p.Start) && !day.After(p.End)
}

func (p Period) Days() []date.Date {
	return date.Range(p.Start, p.End)
}

func (p Period) String() string {
	return p.Start.String() + ".." + p.End.String()
}
