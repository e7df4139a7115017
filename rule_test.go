package envx_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/envx"
)

func TestRuleUnmarshalYAML(t *testing.T) {
	t.Run("bare type tag normalizes to typed rule", func(t *testing.T) {
		var schema envx.Schema
		err := yaml.Unmarshal([]byte("DATABASE_URL: url\nPORT: port\n"), &schema)
		require.NoError(t, err)

		assert.Equal(t, envx.Schema{
			"DATABASE_URL": {Type: "url"},
			"PORT":         {Type: "port"},
		}, schema)
	})

	t.Run("mapping form carries constraint fields", func(t *testing.T) {
		src := `
API_KEY:
  type: string
  minLength: 32
NODE_ENV:
  enum: [development, production, test]
SLUG:
  pattern: "^[a-z-]+$"
  maxLength: 64
`
		var schema envx.Schema
		err := yaml.Unmarshal([]byte(src), &schema)
		require.NoError(t, err)

		assert.Equal(t, envx.Rule{Type: "string", MinLength: 32}, schema["API_KEY"])
		assert.Equal(t, envx.Rule{Enum: []string{"development", "production", "test"}}, schema["NODE_ENV"])
		assert.Equal(t, envx.Rule{Pattern: "^[a-z-]+$", MaxLength: 64}, schema["SLUG"])
	})

	t.Run("decoded schema validates like a hand-built one", func(t *testing.T) {
		var schema envx.Schema
		err := yaml.Unmarshal([]byte("PORT: port\n"), &schema)
		require.NoError(t, err)

		v := envx.New(envx.Map(map[string]string{"PORT": "8080"}))
		assert.NoError(t, v.Validate(schema))
	})
}

func TestRuleUnmarshalJSON(t *testing.T) {
	t.Run("bare type tag normalizes to typed rule", func(t *testing.T) {
		var schema envx.Schema
		err := json.Unmarshal([]byte(`{"API_URL":"url"}`), &schema)
		require.NoError(t, err)

		assert.Equal(t, envx.Schema{"API_URL": {Type: "url"}}, schema)
	})

	t.Run("object form carries constraint fields", func(t *testing.T) {
		var schema envx.Schema
		err := json.Unmarshal([]byte(`{"API_KEY":{"type":"string","minLength":10}}`), &schema)
		require.NoError(t, err)

		assert.Equal(t, envx.Schema{"API_KEY": {Type: "string", MinLength: 10}}, schema)
	})
}

func TestValueTruncation(t *testing.T) {
	validateOne := func(t *testing.T, value string, rule envx.Rule) envx.Violation {
		t.Helper()
		v := envx.New(envx.Map(map[string]string{"V": value}))
		verr := envx.ExtractValidationError(v.Validate(envx.Schema{"V": rule}))
		require.NotNil(t, verr)
		require.Len(t, verr.Invalid, 1)
		return verr.Invalid[0]
	}

	t.Run("short values pass through untouched", func(t *testing.T) {
		violation := validateOne(t, "short", envx.Rule{MinLength: 10})
		assert.Equal(t, "short", violation.Value)
	})

	t.Run("ten characters is the cutoff", func(t *testing.T) {
		violation := validateOne(t, "0123456789", envx.Rule{MinLength: 20})
		assert.Equal(t, "0123456789", violation.Value)
	})

	t.Run("longer values gain an ellipsis marker", func(t *testing.T) {
		violation := validateOne(t, "0123456789abc", envx.Rule{MaxLength: 5})
		assert.Equal(t, "0123456789...", violation.Value)
	})

	t.Run("pattern violations truncate too", func(t *testing.T) {
		violation := validateOne(t, "supersecretvalue", envx.Rule{Pattern: `^[0-9]+$`})
		assert.Equal(t, "supersecre...", violation.Value)
	})

	t.Run("enum violations keep the full value", func(t *testing.T) {
		violation := validateOne(t, "very-long-environment-name", envx.Rule{Enum: []string{"dev"}})
		assert.Equal(t, "very-long-environment-name", violation.Value)
	})
}
