package core

import (
	"fmt"
	"time"
)

var dateFormats = []string{time.RFC3339, "2006-01-02"}

// Date is a time.Time that also accepts plain "YYYY-MM-DD" values on input,
// the way browser date fields submit them.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	s = s[1 : len(s)-1]

	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.UTC().Format(time.RFC3339) + `"`), nil
}
