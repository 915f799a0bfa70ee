package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date reads either a calendar date, taken as midnight UTC, or an RFC 3339 timestamp.
type Date time.Time

func NewDate(t time.Time) *Date {
	d := Date(t)
	return &d
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		*d = Date(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD or RFC 3339", s)
	}
	*d = Date(t)
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d))
}

// Time is the zero time for a nil date.
func (d *Date) Time() time.Time {
	if d == nil {
		return time.Time{}
	}
	return time.Time(*d)
}
