package model

import (
	"fmt"
	"strings"
)

// ValidationResult accumulates every defect found in a payload. Warnings do
// not affect validity; only errors do.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

func (r *ValidationResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

func (r *ValidationResult) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *ValidationResult) AddWarningf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *ValidationResult) ErrorSummary() string {
	if len(r.Errors) == 0 {
		return "no errors"
	}
	return strings.Join(r.Errors, "; ")
}

func (r *ValidationResult) WarningSummary() string {
	if len(r.Warnings) == 0 {
		return "no warnings"
	}
	return strings.Join(r.Warnings, "; ")
}

// Summary renders the full multi-line report used in test output.
func (r *ValidationResult) Summary() string {
	var b strings.Builder
	if r.Valid() {
		b.WriteString("validation result: VALID\n")
	} else {
		b.WriteString("validation result: INVALID\n")
	}

	if r.HasErrors() {
		fmt.Fprintf(&b, "errors (%d):\n", len(r.Errors))
		for i, e := range r.Errors {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, e)
		}
	}
	if r.HasWarnings() {
		fmt.Fprintf(&b, "warnings (%d):\n", len(r.Warnings))
		for i, w := range r.Warnings {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, w)
		}
	}
	if !r.HasErrors() && !r.HasWarnings() {
		b.WriteString("no issues found\n")
	}
	return b.String()
}

func (r *ValidationResult) String() string {
	return fmt.Sprintf("ValidationResult{valid=%t, errors=%d, warnings=%d}", r.Valid(), len(r.Errors), len(r.Warnings))
}
