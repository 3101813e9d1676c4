package models

import (
	"encoding/json"
	"strconv"
)

// FlexNumber is a JSON number that also accepts its quoted string form.
// The zero value means "not supplied".
type FlexNumber string

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FlexNumber(s)
		return nil
	}
	*n = FlexNumber(b)
	return nil
}

// Float64 parses the value; ok is false when it is missing or malformed.
func (n FlexNumber) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses the value, truncating a fractional part; ok is false when it is
// missing or malformed.
func (n FlexNumber) Int() (int, bool) {
	if i, err := strconv.Atoi(string(n)); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// OptionalString records whether a JSON string field was present at all, so
// callers can tell "absent" apart from "explicitly null or empty".
type OptionalString struct {
	Set   bool
	Null  bool
	Value string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}
