package model

import (
	"encoding/json"
	"strings"
)

// Float is a float64 that always encodes with a fractional part, so 2
// is written as 2.0.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(float64(f))
	if err != nil {
		return nil, err
	}
	if !strings.ContainsAny(string(data), ".eE") {
		data = append(data, '.', '0')
	}
	return data, nil
}
