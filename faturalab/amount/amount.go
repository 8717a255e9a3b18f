// Package amount canonicalizes monetary values for the integration API wire
// format. The backend rejects numerals with trailing ".0" and misreads
// scientific notation, so every money field goes through Encode.
package amount

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value with canonical JSON encoding: integral values
// are written without a decimal point, fractional values are rounded half-up
// to two decimal places with trailing zeros stripped. NaN and infinities
// encode as null.
type Amount float64

// Ptr wraps v for use in optional request fields.
func Ptr(v float64) *Amount {
	a := Amount(v)
	return &a
}

// Encode returns the wire representation of v as a raw JSON token.
func Encode(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "null"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}

	d := decimal.NewFromFloat(v).Round(2)
	if d.IsInteger() {
		return d.Truncate(0).String()
	}

	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(Encode(float64(a))), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = Amount(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// Float returns the underlying value, or 0 for a nil pointer.
func (a *Amount) Float() float64 {
	if a == nil {
		return 0
	}
	return float64(*a)
}
