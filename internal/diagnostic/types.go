package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Codes reported while validating a configuration.
const (
	CodeResultNameConflict = "result_name_conflict"
	CodeResultNameRequired = "result_name_required"
	CodeFieldsRequired     = "fields_required"
	CodeFieldNameRequired  = "field_name_required"
	CodeSourcePathRequired = "source_path_required"
	CodeUnknownSourcePath  = "unknown_source_path"
)

// Diagnostics holds all findings from one validation pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of finding.
	Code    string
	Message string
	// Field locates the finding in the configuration, e.g. "fields[2].fieldName".
	Field string
	// Suggestions are possible replacement values.
	Suggestions []string
}

// Severity of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic with optional suggestions.
func (d *Diagnostics) AddWarning(code, message, field string, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    SeverityWarning,
		Code:        code,
		Message:     message,
		Field:       field,
		Suggestions: suggestions,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors. Warnings do not count.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// HasCode reports whether any error or warning carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings} {
		for _, diag := range group {
			if diag.Code == code {
				return true
			}
		}
	}

	return false
}

// All returns errors, then warnings.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	all = append(all, d.Errors...)

	return append(all, d.Warnings...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String formats the diagnostic as "field: [code] message".
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if d.Field != "" {
		return d.Field + ": " + msg
	}

	return msg
}
