package envx

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// HiddenValue replaces real values in List output when hiding is requested.
const HiddenValue = "[HIDDEN]"

// Validator evaluates presence, type and constraint rules against a
// configuration source. It holds no state beyond the source reference and is
// safe for concurrent use whenever the source is.
type Validator struct {
	src Source
}

// New returns a Validator reading from the given source. A nil source falls
// back to the process environment.
func New(src Source) *Validator {
	if src == nil {
		src = OS()
	}
	return &Validator{src: src}
}

// CheckResult reports which of the requested variables are set. Valid is true
// iff Missing is empty; Set and Missing partition the input, order preserved.
type CheckResult struct {
	Valid   bool
	Missing []string
	Set     []string
}

// missing reports whether a variable is absent or empty. The empty string is
// never a valid "set" value anywhere in this package.
func (v *Validator) missing(name string) (string, bool) {
	value, ok := v.src.Lookup(name)
	return value, !ok || value == ""
}

// Require confirms every named variable is present and non-empty. All missing
// names are collected into a single ValidationError rather than failing on
// the first one.
func (v *Validator) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, miss := v.missing(name); miss {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{
			Missing: missing,
			message: "Missing required environment variables: " + strings.Join(missing, ", "),
		}
	}
	return nil
}

// Validate evaluates a whole schema and aggregates every missing and invalid
// variable into one ValidationError. Entries are processed in sorted name
// order so error output is deterministic. A failed type check skips the
// remaining constraints for that variable only; other variables are always
// fully evaluated.
func (v *Validator) Validate(schema Schema) error {
	if schema == nil {
		return ErrNilSchema
	}

	result := &ValidationError{}
	for _, name := range slices.Sorted(maps.Keys(schema)) {
		value, miss := v.missing(name)
		if miss {
			result.Missing = append(result.Missing, name)
			continue
		}
		result.Invalid = append(result.Invalid, schema[name].check(name, value)...)
	}

	if result.IsEmpty() {
		return nil
	}
	return result
}

type getOptions struct {
	fallback *string
	rule     *Rule
}

// GetOption configures a single Get call.
type GetOption func(*getOptions)

// WithDefault supplies a fallback used when the variable is absent or empty.
// Non-string values are stringified with fmt.Sprint. Defaults are validated
// identically to real values when a rule is attached.
func WithDefault(value any) GetOption {
	return func(o *getOptions) {
		s := fmt.Sprint(value)
		o.fallback = &s
	}
}

// WithRule validates the resolved value, default included, before Get returns.
func WithRule(rule Rule) GetOption {
	return func(o *getOptions) {
		o.rule = &rule
	}
}

// Get resolves one variable. Without a default a missing variable is an
// error; with one, the default is substituted locally and never written back
// to the source.
func (v *Validator) Get(name string, opts ...GetOption) (string, error) {
	var options getOptions
	for _, opt := range opts {
		opt(&options)
	}

	value, miss := v.missing(name)
	if miss {
		if options.fallback == nil {
			return "", &ValidationError{
				Missing: []string{name},
				message: fmt.Sprintf("Environment variable %s is required", name),
			}
		}
		value = *options.fallback
	}

	if options.rule != nil {
		if violations := options.rule.check(name, value); len(violations) > 0 {
			return "", &ValidationError{Invalid: violations}
		}
	}

	return value, nil
}

// Check is the non-failing counterpart of Require: a pure read reporting
// which variables are set and which are missing.
func (v *Validator) Check(names ...string) CheckResult {
	result := CheckResult{}
	for _, name := range names {
		if _, miss := v.missing(name); miss {
			result.Missing = append(result.Missing, name)
		} else {
			result.Set = append(result.Set, name)
		}
	}
	result.Valid = len(result.Missing) == 0
	return result
}

// List snapshots every variable in the source. With hideValues true each
// value is replaced by HiddenValue so the result is safe to log.
func (v *Validator) List(hideValues bool) map[string]string {
	entries := v.src.Entries()
	if !hideValues {
		return entries
	}

	hidden := make(map[string]string, len(entries))
	for name := range entries {
		hidden[name] = HiddenValue
	}
	return hidden
}
