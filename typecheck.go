package envx

import (
	"encoding/json"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// Email check per the common single-@ form; full RFC 5322 parsing is overkill
// for configuration values.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// checkType runs the type-tag check for a present, non-empty value. Unknown
// tags are permissive: only the recognized tags below can fail a value.
func checkType(typeTag, value string) bool {
	switch strings.ToLower(typeTag) {
	case "string":
		return true
	case "number":
		f, err := strconv.ParseFloat(value, 64)
		return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	case "boolean":
		switch strings.ToLower(value) {
		case "true", "false", "1", "0":
			return true
		}
		return false
	case "url":
		u, err := url.Parse(value)
		return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
	case "email":
		return emailRegex.MatchString(value)
	case "json":
		return json.Valid([]byte(value))
	case "port":
		n, err := strconv.Atoi(value)
		return err == nil && n >= 1 && n <= 65535
	default:
		return true
	}
}

// matchPattern compiles on each call. An invalid pattern is a programmer
// error and panics at the call site. Cache externally for hot paths.
func matchPattern(pattern, value string) bool {
	return regexp.MustCompile(pattern).MatchString(value)
}

func inEnum(enum []string, value string) bool {
	for _, allowed := range enum {
		if value == allowed {
			return true
		}
	}
	return false
}

func joinEnum(enum []string) string {
	return strings.Join(enum, ", ")
}
