package agenda

import (
	"github.com/rafagnx/clinicos-sub001/internal/domain/blocking"
)

// Index answers per-date availability questions for the visible range. It is
// a pure lookup built from the blocked periods and holidays loaded for that
// range, rebuilt whenever the filter, range or underlying lists change.
type Index struct {
	periods  []*blocking.BlockedPeriod
	holidays map[string]*blocking.Holiday
}

func NewIndex(periods []*blocking.BlockedPeriod, holidays []*blocking.Holiday) *Index {
	hm := make(map[string]*blocking.Holiday, len(holidays))
	for _, h := range holidays {
		hm[h.Date] = h
	}
	return &Index{periods: periods, holidays: hm}
}

// IsBlocked reports whether date (YYYY-MM-DD) falls inside any blocked
// period, bounds inclusive. Lexical comparison is exact for this format.
func (i *Index) IsBlocked(date string) bool {
	for _, p := range i.periods {
		if date >= p.StartDate && date <= p.EndDate {
			return true
		}
	}
	return false
}

// BlockReason returns the reason of the first period covering date. When
// several periods overlap the same date the first match wins; which one is
// "first" follows the order the periods were loaded in.
func (i *Index) BlockReason(date string) (string, bool) {
	for _, p := range i.periods {
		if date >= p.StartDate && date <= p.EndDate {
			return p.Reason, true
		}
	}
	return "", false
}

// HolidayOf returns the holiday falling exactly on date, if any.
func (i *Index) HolidayOf(date string) (*blocking.Holiday, bool) {
	h, ok := i.holidays[date]
	return h, ok
}
