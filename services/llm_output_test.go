package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name     string
		output   string
		expected string
		err      bool
	}{
		{"plain object", `{"a":1}`, `{"a":1}`, false},
		{"surrounding prose", "Sure! {\"a\":1} Hope this helps.", `{"a":1}`, false},
		{"json fence", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`, false},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`, false},
		{"no object", "no idea", "", true},
		{"only closing brace", "} {", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := extractJSON(tc.output)
			if tc.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeLLMOutput(t *testing.T) {
	type output struct {
		Name  string   `json:"name" validate:"required"`
		Score *float64 `json:"score" validate:"required,gte=0,lte=1"`
	}

	t.Run("should decode a valid object", func(t *testing.T) {
		var o output
		assert.NoError(t, decodeLLMOutput(`{"name":"x","score":0.5}`, &o))
		assert.Equal(t, "x", o.Name)
		assert.Equal(t, 0.5, *o.Score)
	})

	t.Run("should reject a missing required field", func(t *testing.T) {
		var o output
		assert.Error(t, decodeLLMOutput(`{"name":"x"}`, &o))
	})

	t.Run("should reject a value out of range", func(t *testing.T) {
		var o output
		assert.Error(t, decodeLLMOutput(`{"name":"x","score":2}`, &o))
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		var o output
		assert.Error(t, decodeLLMOutput(`{"name":`, &o))
	})
}
