package validator

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

type state uint8

const (
	unset state = iota // key absent from the payload
	null               // JSON null or a blank string
	set
	invalid
)

// String is an optional text field. It is trimmed on decode and a blank
// value counts as null.
type String struct {
	Value string
	state state
	err   string
}

func (s *String) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*s = String{state: null}
		return nil
	}
	if len(b) == 0 || b[0] != '"' {
		*s = String{state: invalid, err: "must be a string"}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		*s = String{state: invalid, err: "must be a string"}
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*s = String{state: null}
		return nil
	}
	*s = String{Value: raw, state: set}
	return nil
}

// NewString returns a String holding v (null when v is blank).
func NewString(v string) String {
	v = strings.TrimSpace(v)
	if v == "" {
		return String{state: null}
	}
	return String{Value: v, state: set}
}

// Provided reports whether the key was present in the payload, null included.
func (s String) Provided() bool { return s.state != unset }

// Valid reports whether a usable value is present.
func (s String) Valid() bool { return s.state == set }

func (s String) IsNull() bool { return s.state == null }

// Ptr returns the value, or nil when absent or null.
func (s String) Ptr() *string {
	if s.state != set {
		return nil
	}
	v := s.Value
	return &v
}

func (s String) InputError() string { return s.err }

// Number accepts a JSON number or a numeric string.
type Number struct {
	Value float64
	state state
	err   string
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*n = Number{state: null}
		return nil
	}

	text := string(b)
	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			*n = Number{state: invalid, err: "must be a number"}
			return nil
		}
		text = strings.TrimSpace(raw)
		if text == "" {
			*n = Number{state: null}
			return nil
		}
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = Number{state: invalid, err: "must be a number"}
		return nil
	}
	*n = Number{Value: v, state: set}
	return nil
}

func NewNumber(v float64) Number { return Number{Value: v, state: set} }

func (n Number) Provided() bool { return n.state != unset }

func (n Number) Valid() bool { return n.state == set }

func (n Number) IsNull() bool { return n.state == null }

func (n Number) Ptr() *float64 {
	if n.state != set {
		return nil
	}
	v := n.Value
	return &v
}

func (n Number) InputError() string { return n.err }

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time accepts an ISO-8601 timestamp, an HTML datetime-local value or a
// plain date. Values without an offset are read as UTC.
type Time struct {
	Value time.Time
	state state
	err   string
}

func (t *Time) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*t = Time{state: null}
		return nil
	}

	var raw string
	if len(b) == 0 || b[0] != '"' || json.Unmarshal(b, &raw) != nil {
		*t = Time{state: invalid, err: "must be a valid date"}
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = Time{state: null}
		return nil
	}

	v, ok := ParseTime(raw)
	if !ok {
		*t = Time{state: invalid, err: "must be a valid date"}
		return nil
	}
	*t = Time{Value: v, state: set}
	return nil
}

// ParseTime parses raw with the accepted date layouts.
func ParseTime(raw string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if v, err := time.Parse(layout, raw); err == nil {
			return v.UTC(), true
		}
	}
	return time.Time{}, false
}

func NewTime(v time.Time) Time { return Time{Value: v.UTC(), state: set} }

func (t Time) Provided() bool { return t.state != unset }

func (t Time) Valid() bool { return t.state == set }

func (t Time) IsNull() bool { return t.state == null }

func (t Time) InputError() string { return t.err }

// Patch stores the field in a gorm update map when the key was sent. A null
// value clears the column.
func (s String) Patch(changes map[string]any, column string) {
	if s.state == null || s.state == set {
		changes[column] = s.Ptr()
	}
}

func (n Number) Patch(changes map[string]any, column string) {
	if n.state == null || n.state == set {
		changes[column] = n.Ptr()
	}
}

func (t Time) Patch(changes map[string]any, column string) {
	if t.state == set {
		changes[column] = t.Value
	}
}
