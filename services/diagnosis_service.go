package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/shared"
	"go.opentelemetry.io/otel/attribute"
)

const diagnosisSystemPrompt = `You analyze failures of an AI code generation run inside a sandbox.
Classify the failure and respond with a single JSON object and nothing else:
{
  "category": "COMPILATION" | "DEPENDENCY" | "SYNTAX" | "LOGIC" | "INFRASTRUCTURE" | "USER_INPUT",
  "severity": "LOW" | "MEDIUM" | "HIGH" | "CRITICAL",
  "diagnostic": "<short human readable explanation of the root cause>",
  "canAutoFix": <true if shell commands or file edits inside the sandbox can fix it>,
  "confidence": <number between 0 and 1>,
  "suggestedActions": ["<action>", ...]
}`

type diagnosisInput struct {
	Error     string              `json:"error"`
	ErrorType string              `json:"errorType,omitempty"`
	Stage     dtos.ExecutionStage `json:"stage"`
	Prompt    string              `json:"prompt"`
	SandboxID string              `json:"sandboxId,omitempty"`
}

// every field is required, missing values must not silently turn into zero values
type diagnosisOutput struct {
	Category         dtos.ErrorCategory `json:"category" validate:"required"`
	Severity         dtos.ErrorSeverity `json:"severity" validate:"required"`
	Diagnostic       string             `json:"diagnostic" validate:"required"`
	CanAutoFix       *bool              `json:"canAutoFix" validate:"required"`
	Confidence       *float64           `json:"confidence" validate:"required,gte=0,lte=1"`
	SuggestedActions []string           `json:"suggestedActions"`
}

type diagnosisService struct {
	reasoningBackend shared.ReasoningBackend
}

var _ shared.DiagnosisService = (*diagnosisService)(nil)

func NewDiagnosisService(reasoningBackend shared.ReasoningBackend) *diagnosisService {
	return &diagnosisService{
		reasoningBackend: reasoningBackend,
	}
}

// Diagnose never fails. Whenever the backend cannot produce a valid analysis the fallback diagnosis is returned.
func (s *diagnosisService) Diagnose(ctx context.Context, err error, errorContext dtos.ErrorContext) (diagnosis dtos.Diagnosis) {
	ctx, span := monitoring.StartSpan(ctx, "diagnosis.diagnose", attribute.String("stage", string(errorContext.Stage)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic during diagnosis", "panic", r, "attemptID", errorContext.AttemptID)
			diagnosis = fallbackDiagnosis()
		}
		monitoring.DiagnosisTotal.WithLabelValues(string(diagnosis.Category), string(diagnosis.Severity)).Inc()
		span.SetAttributes(attribute.String("category", string(diagnosis.Category)), attribute.String("severity", string(diagnosis.Severity)))
	}()

	input := diagnosisInput{
		Error:     errorContext.Error,
		ErrorType: errorContext.ErrorType,
		Stage:     errorContext.Stage,
		Prompt:    errorContext.Prompt,
		SandboxID: errorContext.SandboxID,
	}
	if err != nil {
		input.Error = err.Error()
	}

	inputJSON, marshalErr := json.Marshal(input)
	if marshalErr != nil {
		slog.Error("could not marshal diagnosis input", "err", marshalErr)
		return fallbackDiagnosis()
	}

	output, runErr := s.reasoningBackend.Run(ctx, diagnosisSystemPrompt, string(inputJSON))
	if runErr != nil {
		slog.Warn("reasoning backend failed to diagnose error", "err", runErr, "attemptID", errorContext.AttemptID)
		return fallbackDiagnosis()
	}

	var parsed diagnosisOutput
	if decodeErr := decodeLLMOutput(output, &parsed); decodeErr != nil {
		slog.Warn("could not use diagnosis of reasoning backend", "err", decodeErr, "attemptID", errorContext.AttemptID)
		return fallbackDiagnosis()
	}

	diagnosis = dtos.Diagnosis{
		Category:         parsed.Category,
		Severity:         parsed.Severity,
		Diagnostic:       parsed.Diagnostic,
		CanAutoFix:       *parsed.CanAutoFix,
		Confidence:       *parsed.Confidence,
		SuggestedActions: parsed.SuggestedActions,
	}
	if diagnosis.SuggestedActions == nil {
		diagnosis.SuggestedActions = []string{}
	}
	if validationErr := diagnosis.Validate(); validationErr != nil {
		slog.Warn("reasoning backend returned an invalid diagnosis", "err", validationErr, "attemptID", errorContext.AttemptID)
		return fallbackDiagnosis()
	}
	return diagnosis
}

func fallbackDiagnosis() dtos.Diagnosis {
	monitoring.DiagnosisFallbackTotal.Inc()
	return dtos.FallbackDiagnosis()
}
