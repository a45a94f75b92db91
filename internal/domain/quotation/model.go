package quotation

import (
	"encoding/json"
	"time"
)

// Status marks how far a quotation has progressed commercially. The zero
// value means no status was recorded.
type Status string

const (
	StatusProspection Status = "Prospección"
	StatusSale        Status = "Venta"
)

// Date is a calendar date with no time component, persisted as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Quotation is a commercial proposal. Quotations are immutable once
// created: there is no update or delete operation.
type Quotation struct {
	ID     string  `json:"id"`
	Client string  `json:"client"`
	Sector string  `json:"sector"`
	Amount float64 `json:"amount"`
	Date   Date    `json:"date"`
	Status Status  `json:"status,omitempty"`
}
