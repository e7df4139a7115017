package envx

import (
	"errors"
	"fmt"
	"strings"
)

// Package-specific errors
var (
	// ErrNilSchema is returned when a nil schema is passed to Validate.
	ErrNilSchema = errors.New("nil schema provided to validator")

	// ErrNilPointer is returned when a nil pointer is provided to Load.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrParsingConfig is returned when source values cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)

// Violation describes a single failed rule for one variable.
// Value may be truncated to avoid leaking secrets in error output.
type Violation struct {
	Name     string
	Value    string
	Expected string
	Reason   string
}

// ValidationError aggregates every missing and invalid variable discovered in
// one pass, so an operator can fix the whole configuration at once instead of
// iterating one failure at a time.
type ValidationError struct {
	Missing []string
	Invalid []Violation

	// message overrides the composed text for operations with their own
	// wording, such as Require and Get.
	message string
}

func (e *ValidationError) Error() string {
	if e.message != "" {
		return e.message
	}

	var b strings.Builder
	if len(e.Missing) > 0 {
		b.WriteString("Missing environment variables: ")
		b.WriteString(strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		if len(e.Missing) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Invalid environment variables:")
		for _, v := range e.Invalid {
			b.WriteString(fmt.Sprintf("\n  - %s: %s", v.Name, v.Reason))
		}
	}
	return strings.TrimRight(b.String(), " \t\n")
}

func (e *ValidationError) Has(name string) bool {
	for _, n := range e.Missing {
		if n == name {
			return true
		}
	}
	for _, v := range e.Invalid {
		if v.Name == name {
			return true
		}
	}
	return false
}

// Get returns the violation reasons recorded for a variable.
func (e *ValidationError) Get(name string) []string {
	var reasons []string
	for _, v := range e.Invalid {
		if v.Name == name {
			reasons = append(reasons, v.Reason)
		}
	}
	return reasons
}

func (e *ValidationError) IsEmpty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

// ExtractValidationError extracts a *ValidationError from an error chain.
func ExtractValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verr *ValidationError
	return errors.As(err, &verr)
}
