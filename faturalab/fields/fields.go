// Package fields probes parsed JSON documents for the first present value
// among several candidate names. The integration backend is not consistent
// about where it puts semantically identical fields, so every read goes
// through an ordered candidate list instead of a fixed struct shape.
package fields

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Document is a parsed JSON object. All accessors are nil-safe.
type Document map[string]any

func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	return doc, nil
}

// Lookup returns the first candidate that is present and non-null.
func (d Document) Lookup(names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := d[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Child returns the named nested object, or nil when absent or not an object.
func (d Document) Child(name string) Document {
	if m, ok := d[name].(map[string]any); ok {
		return Document(m)
	}
	return nil
}

// String returns the first candidate coercible to a string. Objects and
// arrays are skipped so a structured "error" value does not shadow a scalar
// "message" later in the candidate list.
func (d Document) String(names ...string) (string, bool) {
	for _, name := range names {
		v, ok := d[name]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			return t, true
		case float64:
			return formatNumber(t), true
		case bool:
			return strconv.FormatBool(t), true
		}
	}
	return "", false
}

// Float returns the first numeric candidate. Numbers arriving as strings are
// parsed, matching the backend's loose typing.
func (d Document) Float(names ...string) (float64, bool) {
	for _, name := range names {
		v, ok := d[name]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t, true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func (d Document) Int(names ...string) (int, bool) {
	if f, ok := d.Float(names...); ok {
		return int(f), true
	}
	return 0, false
}

func (d Document) Bool(name string) bool {
	b, ok := d[name].(bool)
	return ok && b
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
