// Package money represents monetary values as integer minor currency units.
// Amounts never pass through floating point.
package money

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in minor currency units (1/100 of a major unit).
type Cents int64

// ParseDecimal converts a decimal major-unit string ("299.99") into cents.
// Fractional digits beyond the second are rounded half away from zero.
func ParseDecimal(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if intPart == "" {
		intPart = "0"
	}
	if hasFrac && fracPart == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	major, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := major * 100
	for i, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		switch i {
		case 0:
			cents += int64(r-'0') * 10
		case 1:
			cents += int64(r - '0')
		case 2:
			if r >= '5' {
				cents++
			}
		}
	}

	if neg {
		cents = -cents
	}
	return Cents(cents), nil
}

// String formats the amount as a major-unit decimal with exactly two
// fractional digits, the inverse of ParseDecimal for exact cent values.
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as an integer cent count.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(c), 10)), nil
}

// UnmarshalJSON accepts either an integer cent count (29999) or a decimal
// major-unit string ("299.99"). Fractional JSON numbers are rejected: a bare
// 299.99 is ambiguous between cents and dollars.
func (c *Cents) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseDecimal(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("price must be an integer cent count or a decimal string: %w", err)
	}
	*c = Cents(v)
	return nil
}
