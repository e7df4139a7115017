package envx

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule is the set of constraints attached to one variable. The zero value is
// unconstrained. Type and the constraint fields apply independently: a failed
// type check skips the constraints for that variable, but MinLength,
// MaxLength, Pattern and Enum are each evaluated on their own when present.
//
// Zero means "not set" for MinLength and MaxLength: a minimum of zero is
// vacuous and a maximum of zero could only match the empty string, which
// counts as missing before constraints are ever reached.
type Rule struct {
	Type      string   `json:"type,omitempty" yaml:"type,omitempty"`
	MinLength int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enum      []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Schema maps variable names to their rules for a single Validate call.
type Schema map[string]Rule

// UnmarshalYAML accepts either a bare type tag ("number") or a mapping with
// constraint fields, so schemas can be declared in configuration files.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var tag string
		if err := node.Decode(&tag); err != nil {
			return err
		}
		*r = Rule{Type: tag}
		return nil
	}

	type plain Rule
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*r = Rule(p)
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON-declared schemas.
func (r *Rule) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		*r = Rule{Type: tag}
		return nil
	}

	type plain Rule
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Rule(p)
	return nil
}

// truncation limit for values echoed in length and pattern violation reports,
// so full secret values never reach logs.
const maxReportedValueLen = 10

func truncateValue(value string) string {
	if len(value) <= maxReportedValueLen {
		return value
	}
	return value[:maxReportedValueLen] + "..."
}

// check evaluates the rule against a present, non-empty value and returns one
// violation per failed constraint.
func (r Rule) check(name, value string) []Violation {
	if r.Type != "" && !checkType(r.Type, value) {
		return []Violation{{
			Name:     name,
			Value:    value,
			Expected: r.Type,
			Reason:   fmt.Sprintf("Expected %s, got %q", r.Type, value),
		}}
	}

	var violations []Violation

	if r.MinLength > 0 && len(value) < r.MinLength {
		violations = append(violations, Violation{
			Name:     name,
			Value:    truncateValue(value),
			Expected: fmt.Sprintf("minimum length %d", r.MinLength),
			Reason:   fmt.Sprintf("Length %d is less than minimum length %d", len(value), r.MinLength),
		})
	}

	if r.MaxLength > 0 && len(value) > r.MaxLength {
		violations = append(violations, Violation{
			Name:     name,
			Value:    truncateValue(value),
			Expected: fmt.Sprintf("maximum length %d", r.MaxLength),
			Reason:   fmt.Sprintf("Length %d exceeds maximum length %d", len(value), r.MaxLength),
		})
	}

	if r.Pattern != "" && !matchPattern(r.Pattern, value) {
		violations = append(violations, Violation{
			Name:     name,
			Value:    truncateValue(value),
			Expected: fmt.Sprintf("pattern %s", r.Pattern),
			Reason:   fmt.Sprintf("Value does not match pattern %s", r.Pattern),
		})
	}

	if len(r.Enum) > 0 && !inEnum(r.Enum, value) {
		violations = append(violations, Violation{
			Name:     name,
			Value:    value,
			Expected: fmt.Sprintf("one of: %s", joinEnum(r.Enum)),
			Reason:   fmt.Sprintf("Value %q is not one of: %s", value, joinEnum(r.Enum)),
		})
	}

	return violations
}
