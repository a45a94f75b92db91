package quotation

import "time"

// Period selects quotations by calendar window relative to now. Matching
// uses local calendar semantics, not elapsed-duration windows.
type Period string

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodAnnual    Period = "annual"
)

// ValidPeriod reports whether p is one of the defined calendar periods.
func ValidPeriod(p Period) bool {
	return p == PeriodMonthly || p == PeriodQuarterly || p == PeriodAnnual
}

// quarterOf returns the zero-indexed calendar quarter of a month.
func quarterOf(m time.Month) int {
	return (int(m) - 1) / 3
}

// Matches reports whether a date falls inside the period containing now.
func (p Period) Matches(d Date, now time.Time) bool {
	if d.IsZero() {
		return false
	}
	if d.Year() != now.Year() {
		return false
	}
	switch p {
	case PeriodAnnual:
		return true
	case PeriodQuarterly:
		return quarterOf(d.Month()) == quarterOf(now.Month())
	case PeriodMonthly:
		return d.Month() == now.Month()
	}
	return false
}

// FilterByPeriod returns the quotations dated inside the period containing
// now, preserving order.
func FilterByPeriod(quotations []Quotation, p Period, now time.Time) []Quotation {
	matched := make([]Quotation, 0, len(quotations))
	for _, q := range quotations {
		if p.Matches(q.Date, now) {
			matched = append(matched, q)
		}
	}
	return matched
}
