package diagnostic

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"numconv-generator/internal/common"
)

// Diagnostics collects per-derivation outcomes across one generator run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a short stable identifier for this class of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Type identifies the annotated type this relates to (if any).
	Type string
	// Capability identifies the derivation this relates to (if any).
	Capability string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, capability string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:   SeverityError,
		Code:       code,
		Message:    message,
		Type:       typeName,
		Capability: capability,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, capability string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   SeverityWarning,
		Code:       code,
		Message:    message,
		Type:       typeName,
		Capability: capability,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, capability string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   SeverityInfo,
		Code:       code,
		Message:    message,
		Type:       typeName,
		Capability: capability,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error returns a combined error from all error diagnostics, or nil if none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Capability != "" {
		prefix = append(prefix, d.Capability)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
