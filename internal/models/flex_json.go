package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UnmarshalJSON implements flexible decoding of a stat document. Counters may
// arrive as native integers, floats or quoted strings depending on the tool
// that exported them; all are coerced to int64. A counter that cannot be read
// as a non-negative number makes the whole document malformed.
func (d *RawStatDocument) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias RawStatDocument
	a := (*Alias)(d)

	// Fast path: every counter is a native integer
	if err := json.Unmarshal(data, a); err == nil {
		return d.checkCounts()
	}

	// Slow path: counter-by-counter coercion
	var raw struct {
		Stats       map[string]map[string]jsoniter.RawMessage `json:"stats"`
		DataVersion jsoniter.RawMessage                       `json:"DataVersion"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	d.DataVersion = 0
	if len(raw.DataVersion) > 0 {
		if n, err := coerceCount(raw.DataVersion); err == nil {
			d.DataVersion = int(n)
		}
	}

	d.Stats = nil
	if raw.Stats == nil {
		return nil
	}
	d.Stats = make(map[string]map[string]int64, len(raw.Stats))
	for category, entries := range raw.Stats {
		if entries == nil {
			continue
		}
		counts := make(map[string]int64, len(entries))
		for key, rawVal := range entries {
			n, err := coerceCount(rawVal)
			if err != nil {
				return fmt.Errorf("%w: %s/%s: %v", ErrMalformedDocument, category, key, err)
			}
			counts[key] = n
		}
		d.Stats[category] = counts
	}

	return d.checkCounts()
}

func (d *RawStatDocument) checkCounts() error {
	for category, entries := range d.Stats {
		for key, n := range entries {
			if n < 0 {
				return fmt.Errorf("%w: %s/%s is negative (%d)", ErrMalformedDocument, category, key, n)
			}
		}
	}
	return nil
}

// coerceCount converts a raw JSON number or numeric string to an int64.
func coerceCount(raw []byte) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}

	s := string(raw)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return 0, err
		}
		s = unquoted
		if s == "" {
			return 0, nil
		}
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	// ParseFloat handles "28.0" and 1e3 → truncate to int
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite counter %q", s)
	}
	return int64(f), nil
}
