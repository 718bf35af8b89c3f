package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestErrorContext(stage dtos.ExecutionStage, err error) dtos.ErrorContext {
	return dtos.NewErrorContext(uuid.New(), uuid.New(), stage, err, "build me a todo app", "sbx-1")
}

func TestDiagnose(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("Cannot find module 'left-pad'")

	t.Run("should return the diagnosis of the backend", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		backend.On("Run", mock.Anything, diagnosisSystemPrompt, mock.MatchedBy(func(input string) bool {
			return assert.Contains(t, input, "left-pad") && assert.Contains(t, input, `"stage":"exception"`)
		})).Return(`{"category":"DEPENDENCY","severity":"LOW","diagnostic":"left-pad is not installed","canAutoFix":true,"confidence":0.9,"suggestedActions":["npm install left-pad"]}`, nil)

		diagnosis := NewDiagnosisService(backend).Diagnose(ctx, cause, newTestErrorContext(dtos.StageException, cause))

		assert.Equal(t, dtos.Diagnosis{
			Category:         dtos.ErrorCategoryDependency,
			Severity:         dtos.ErrorSeverityLow,
			Diagnostic:       "left-pad is not installed",
			CanAutoFix:       true,
			Confidence:       0.9,
			SuggestedActions: []string{"npm install left-pad"},
		}, diagnosis)
	})

	t.Run("should accept a fenced json block", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		backend.On("Run", mock.Anything, mock.Anything, mock.Anything).Return("Here you go:\n```json\n{\"category\":\"SYNTAX\",\"severity\":\"LOW\",\"diagnostic\":\"missing bracket\",\"canAutoFix\":true,\"confidence\":0.95}\n```", nil)

		diagnosis := NewDiagnosisService(backend).Diagnose(ctx, cause, newTestErrorContext(dtos.StageException, cause))

		assert.Equal(t, dtos.ErrorCategorySyntax, diagnosis.Category)
		assert.Equal(t, []string{}, diagnosis.SuggestedActions)
	})

	fallbackCases := []struct {
		name   string
		output string
		err    error
	}{
		{"backend error", "", errors.New("rate limited")},
		{"no json at all", "I am not sure what happened", nil},
		{"malformed json", `{"category": "SYNTAX",`, nil},
		{"unknown category", `{"category":"NETWORK","severity":"LOW","diagnostic":"x","canAutoFix":true,"confidence":0.9}`, nil},
		{"unknown severity", `{"category":"SYNTAX","severity":"URGENT","diagnostic":"x","canAutoFix":true,"confidence":0.9}`, nil},
		{"confidence out of range", `{"category":"SYNTAX","severity":"LOW","diagnostic":"x","canAutoFix":true,"confidence":1.5}`, nil},
		{"missing confidence", `{"category":"SYNTAX","severity":"LOW","diagnostic":"x","canAutoFix":true}`, nil},
		{"missing canAutoFix", `{"category":"SYNTAX","severity":"LOW","diagnostic":"x","confidence":0.5}`, nil},
		{"missing diagnostic", `{"category":"SYNTAX","severity":"LOW","canAutoFix":true,"confidence":0.5}`, nil},
	}

	for _, tc := range fallbackCases {
		t.Run("should fall back on "+tc.name, func(t *testing.T) {
			backend := mocks.NewReasoningBackend(t)
			backend.On("Run", mock.Anything, mock.Anything, mock.Anything).Return(tc.output, tc.err)

			diagnosis := NewDiagnosisService(backend).Diagnose(ctx, cause, newTestErrorContext(dtos.StageException, cause))

			assert.Equal(t, dtos.FallbackDiagnosis(), diagnosis)
			assert.Equal(t, dtos.ErrorCategoryInfrastructure, diagnosis.Category)
			assert.Equal(t, dtos.ErrorSeverityHigh, diagnosis.Severity)
			assert.Equal(t, "Failed to analyze error", diagnosis.Diagnostic)
			assert.False(t, diagnosis.CanAutoFix)
			assert.Zero(t, diagnosis.Confidence)
		})
	}

	t.Run("should fall back if the backend panics", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		backend.On("Run", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			panic("boom")
		}).Return("", nil)

		diagnosis := NewDiagnosisService(backend).Diagnose(ctx, cause, newTestErrorContext(dtos.StageException, cause))
		assert.Equal(t, dtos.FallbackDiagnosis(), diagnosis)
	})

	t.Run("should use the error of the context if no error is passed", func(t *testing.T) {
		backend := mocks.NewReasoningBackend(t)
		backend.On("Run", mock.Anything, mock.Anything, mock.MatchedBy(func(input string) bool {
			return assert.Contains(t, input, "agent loop finished")
		})).Return("", errors.New("offline"))

		NewDiagnosisService(backend).Diagnose(ctx, nil, newTestErrorContext(dtos.StageNoOutput, ErrNoAgentOutput))
	})
}
