package models

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexibleID holds a record id that the remote API sends as a number on some
// endpoints and as a string on others.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

func (id FlexibleID) String() string {
	return string(id)
}

// Int returns the numeric form for payloads that expect a number, such as vaccination registration.
func (id FlexibleID) Int() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(id)), 10, 64)
}

// NullFloat is an optional measurement. Empty strings and null decode as absent,
// numeric strings decode as numbers.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

func NewNullFloat(value float64) NullFloat {
	return NullFloat{Float64: value, Valid: true}
}

func (n *NullFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = NullFloat{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = NewNullFloat(value)
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*n = NewNullFloat(value)
	return nil
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// Present reports a usable non-zero value. Zero readings count as not entered.
func (n NullFloat) Present() bool {
	return n.Valid && n.Float64 != 0
}

// YesNo is a boolean flag that travels as "Ya"/"Tidak" but is also accepted
// as a JSON boolean, number or "true"/"false" string.
type YesNo bool

func (y *YesNo) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*y = false
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = YesNo(parseYesNo(s))
		return nil
	case bytes.Equal(data, []byte("true")):
		*y = true
		return nil
	case bytes.Equal(data, []byte("false")):
		*y = false
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = n != 0
	return nil
}

func (y YesNo) MarshalJSON() ([]byte, error) {
	return json.Marshal(y.String())
}

func (y YesNo) String() string {
	if y {
		return "Ya"
	}
	return "Tidak"
}

func parseYesNo(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ya", "y", "yes", "true", "1":
		return true
	}
	return false
}

// FlexibleInt accepts counts sent either as JSON numbers or as numeric strings.
type FlexibleInt int

func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		value, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = FlexibleInt(value)
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*n = FlexibleInt(value)
	return nil
}
