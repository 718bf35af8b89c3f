package services

import (
	"context"
	"errors"
	"testing"

	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/mocks"
	"github.com/l3montree-dev/fixflow/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func confidentDiagnosis() dtos.Diagnosis {
	return dtos.Diagnosis{
		Category:   dtos.ErrorCategorySyntax,
		Severity:   dtos.ErrorSeverityLow,
		Diagnostic: "missing bracket",
		CanAutoFix: true,
		Confidence: 0.9,
	}
}

func TestGenerateFix(t *testing.T) {
	ctx := context.Background()
	errorContext := newTestErrorContext(dtos.StageException, errors.New("SyntaxError"))

	t.Run("should not call the backend if the error can not be fixed automatically", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		d := confidentDiagnosis()
		d.CanAutoFix = false

		assert.Nil(t, NewFixGeneratorService(backend, statemachine.DefaultPolicyGate()).GenerateFix(ctx, d, errorContext))
		backend.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not call the backend if the diagnosis is not confident enough", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		d := confidentDiagnosis()
		d.Confidence = 0.7

		assert.Nil(t, NewFixGeneratorService(backend, statemachine.DefaultPolicyGate()).GenerateFix(ctx, d, errorContext))
	})

	t.Run("should parse a command fix", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		backend.On("Run", mock.Anything, fixGenerationSystemPrompt, mock.Anything).Return(`{"description":"install left-pad","type":"command","commands":["npm install left-pad"],"reasoning":"missing module","confidence":0.85}`, nil)

		draft := NewFixGeneratorService(backend, statemachine.DefaultPolicyGate()).GenerateFix(ctx, confidentDiagnosis(), errorContext)
		require.NotNil(t, draft)
		assert.Equal(t, "install left-pad", draft.Description)
		assert.Equal(t, dtos.CommandFix{Commands: []string{"npm install left-pad"}}, draft.Payload)
		assert.Equal(t, 0.85, draft.Confidence)
	})

	t.Run("should parse a multi step fix", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		backend.On("Run", mock.Anything, mock.Anything, mock.Anything).Return("```json\n"+`{"description":"fix","type":"multiStep","commands":["npm i"],"files":[{"path":"a.ts","content":"x"}],"confidence":0.5}`+"\n```", nil)

		draft := NewFixGeneratorService(backend, statemachine.DefaultPolicyGate()).GenerateFix(ctx, confidentDiagnosis(), errorContext)
		require.NotNil(t, draft)
		assert.Equal(t, dtos.MultiStepFix{Commands: []string{"npm i"}, Files: []dtos.FileChange{{Path: "a.ts", Content: "x"}}}, draft.Payload)
	})

	invalidOutputs := []struct {
		name   string
		output string
		err    error
	}{
		{"a backend error", "", errors.New("timeout")},
		{"malformed json", `{"description":`, nil},
		{"an unknown fix type", `{"description":"x","type":"patch","commands":["a"],"confidence":0.9}`, nil},
		{"an empty command fix", `{"description":"x","type":"command","commands":[],"confidence":0.9}`, nil},
		{"a command fix with files", `{"description":"x","type":"command","commands":["a"],"files":[{"path":"a","content":""}],"confidence":0.9}`, nil},
		{"a file change without path", `{"description":"x","type":"fileChange","files":[{"path":"","content":"a"}],"confidence":0.9}`, nil},
		{"a confidence above one", `{"description":"x","type":"command","commands":["a"],"confidence":1.2}`, nil},
		{"a negative confidence", `{"description":"x","type":"command","commands":["a"],"confidence":-0.1}`, nil},
		{"a missing confidence", `{"description":"x","type":"command","commands":["a"]}`, nil},
		{"a missing description", `{"type":"command","commands":["a"],"confidence":0.9}`, nil},
	}

	for _, tc := range invalidOutputs {
		t.Run("should return nil for "+tc.name, func(t *testing.T) {
			backend := mocks.NewReasoningBackend(t)
			backend.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(tc.output, tc.err)

			assert.Nil(t, NewFixGeneratorService(backend, statemachine.DefaultPolicyGate()).GenerateFix(ctx, confidentDiagnosis(), errorContext))
		})
	}
}
