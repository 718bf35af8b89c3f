package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixPayload(t *testing.T) {
	t.Run("should reject empty payloads", func(t *testing.T) {
		_, err := NewFixPayload(FixTypeCommand, nil, nil)
		assert.ErrorIs(t, err, ErrEmptyFixPayload)
		_, err = NewFixPayload(FixTypeFileChange, nil, nil)
		assert.ErrorIs(t, err, ErrEmptyFixPayload)
		_, err = NewFixPayload(FixTypeMultiStep, nil, nil)
		assert.ErrorIs(t, err, ErrEmptyFixPayload)
	})

	t.Run("should reject mixed single step payloads", func(t *testing.T) {
		_, err := NewFixPayload(FixTypeCommand, []string{"ls"}, []FileChange{{Path: "a"}})
		assert.Error(t, err)
		_, err = NewFixPayload(FixTypeFileChange, []string{"ls"}, []FileChange{{Path: "a"}})
		assert.Error(t, err)
	})

	t.Run("should reject blank commands and paths", func(t *testing.T) {
		_, err := NewFixPayload(FixTypeCommand, []string{"ls", "  "}, nil)
		assert.EqualError(t, err, "command 1 is empty")
		_, err = NewFixPayload(FixTypeMultiStep, []string{"ls"}, []FileChange{{Path: " ", Content: "x"}})
		assert.EqualError(t, err, "file change 0 has no path")
	})

	t.Run("should reject unknown types", func(t *testing.T) {
		_, err := NewFixPayload("shell", []string{"ls"}, nil)
		assert.EqualError(t, err, `unknown fix type "shell"`)
	})

	t.Run("multi step may carry only commands or only files", func(t *testing.T) {
		p, err := NewFixPayload(FixTypeMultiStep, nil, []FileChange{{Path: "a.ts"}})
		require.NoError(t, err)
		assert.Equal(t, MultiStepFix{Files: []FileChange{{Path: "a.ts"}}}, p)
	})
}

func TestFixEnvelope(t *testing.T) {
	t.Run("should encode the type discriminator", func(t *testing.T) {
		b, err := json.Marshal(FixEnvelope{Payload: CommandFix{Commands: []string{"npm i"}}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"command","commands":["npm i"]}`, string(b))
	})

	t.Run("should decode into the concrete variant", func(t *testing.T) {
		var e FixEnvelope
		require.NoError(t, json.Unmarshal([]byte(`{"type":"fileChange","files":[{"path":"a.ts","content":"x"}]}`), &e))
		assert.Equal(t, FileChangeFix{Files: []FileChange{{Path: "a.ts", Content: "x"}}}, e.Payload)
	})

	t.Run("nil payload is null", func(t *testing.T) {
		b, err := json.Marshal(FixEnvelope{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(b))

		var e FixEnvelope
		require.NoError(t, json.Unmarshal([]byte("null"), &e))
		assert.Nil(t, e.Payload)
	})

	t.Run("should refuse invalid stored payloads", func(t *testing.T) {
		var e FixEnvelope
		assert.Error(t, json.Unmarshal([]byte(`{"type":"command","commands":[]}`), &e))
	})
}

func TestFixStatusIsTerminal(t *testing.T) {
	assert.False(t, FixStatusPending.IsTerminal())
	assert.True(t, FixStatusApproved.IsTerminal())
	assert.True(t, FixStatusRejected.IsTerminal())
	assert.True(t, FixStatusAutoFixed.IsTerminal())
}
