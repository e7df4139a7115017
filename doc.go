// Package envx validates process environment configuration at application
// startup: it confirms required variables exist and optionally checks their
// values against type and constraint rules, failing fast with a descriptive
// aggregate error instead of letting malformed configuration propagate into
// runtime logic.
//
// # Architecture
//
// The package is built around three small pieces:
//
//   - Source    – capability interface over a key/value configuration store;
//     OS() reads the process environment, Map() wraps an in-memory fixture.
//   - Rule      – per-variable constraints (type tag, min/max length, pattern,
//     enum); Schema maps variable names to rules.
//   - Validator – evaluates rules against a Source and reports results either
//     as an aggregate *ValidationError or as structured values, depending on
//     the operation.
//
// The Validator holds no state beyond its Source reference, performs no I/O
// and is safe for concurrent use whenever its Source is.
//
// # Usage
//
//	v := envx.New(envx.OS())
//
//	// Fail fast when anything required is absent or empty.
//	if err := v.Require("DATABASE_URL", "API_KEY"); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or validate values against a schema in one pass.
//	err := v.Validate(envx.Schema{
//		"DATABASE_URL": {Type: "url"},
//		"API_KEY":      {Type: "string", MinLength: 32},
//		"NODE_ENV":     {Enum: []string{"development", "production", "test"}},
//	})
//
//	// Single values with defaults and inline rules.
//	port, err := v.Get("PORT", envx.WithDefault(8080), envx.WithRule(envx.Rule{Type: "port"}))
//
// Schemas can also be declared in YAML or JSON configuration files; a rule is
// either a bare type tag ("number") or a mapping with constraint fields.
//
// For struct-based configuration the package wraps `github.com/caarlos0/env`:
//
//	var cfg DatabaseConfig
//	if err := envx.Load(envx.OS(), &cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Validation failures are reported through *ValidationError, which aggregates
// every missing and invalid variable discovered in one pass so an operator
// can fix the whole configuration at once. It carries structured Missing and
// Invalid fields alongside the composed message and can be recovered from an
// error chain with errors.As or ExtractValidationError.
//
// Sentinel errors (ErrNilSchema, ErrNilPointer, ErrParsingConfig) signal
// malformed call-site input and can be compared with errors.Is.
//
// # Security Considerations
//
// Values echoed in length and pattern violation reports are truncated to ten
// characters, and List(true) masks every value with [HIDDEN], so secrets do
// not leak into logs. Enum violations show the full value since enum members
// are discrete non-secret tokens.
package envx
