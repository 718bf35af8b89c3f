package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/statemachine"
	"go.opentelemetry.io/otel/attribute"
)

const fixGenerationSystemPrompt = `You propose a fix for a failed AI code generation run inside a sandbox.
The fix is either a list of shell commands, a list of complete file contents or both.
Commands always run before files are written. Respond with a single JSON object and nothing else:
{
  "description": "<one sentence describing the fix>",
  "type": "command" | "fileChange" | "multiStep",
  "commands": ["<shell command>", ...],
  "files": [{"path": "<path relative to the project root>", "content": "<complete new file content>"}],
  "reasoning": "<why this fixes the failure>",
  "confidence": <number between 0 and 1>
}`

type fixGenerationInput struct {
	Diagnosis dtos.Diagnosis    `json:"diagnosis"`
	Context   dtos.ErrorContext `json:"context"`
}

type fixGenerationOutput struct {
	Description string            `json:"description" validate:"required"`
	Type        dtos.FixType      `json:"type" validate:"required"`
	Commands    []string          `json:"commands"`
	Files       []dtos.FileChange `json:"files"`
	Reasoning   string            `json:"reasoning"`
	Confidence  *float64          `json:"confidence" validate:"required,gte=0,lte=1"`
}

type fixGeneratorService struct {
	reasoningBackend shared.ReasoningBackend
	policyGate       statemachine.PolicyGate
}

var _ shared.FixGenerator = (*fixGeneratorService)(nil)

func NewFixGeneratorService(reasoningBackend shared.ReasoningBackend, policyGate statemachine.PolicyGate) *fixGeneratorService {
	return &fixGeneratorService{
		reasoningBackend: reasoningBackend,
		policyGate:       policyGate,
	}
}

// GenerateFix returns nil if the diagnosis does not allow a fix or the backend did not produce a usable one.
func (s *fixGeneratorService) GenerateFix(ctx context.Context, diagnosis dtos.Diagnosis, errorContext dtos.ErrorContext) (draft *dtos.FixDraft) {
	if !s.policyGate.FixGenerationAllowed(diagnosis) {
		monitoring.FixGenerationTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	ctx, span := monitoring.StartSpan(ctx, "fixgenerator.generate", attribute.String("category", string(diagnosis.Category)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic during fix generation", "panic", r, "attemptID", errorContext.AttemptID)
			draft = nil
		}
		if draft == nil {
			monitoring.FixGenerationTotal.WithLabelValues("failed").Inc()
		} else {
			monitoring.FixGenerationTotal.WithLabelValues("generated").Inc()
		}
	}()

	input, err := json.Marshal(fixGenerationInput{Diagnosis: diagnosis, Context: errorContext})
	if err != nil {
		slog.Error("could not marshal fix generation input", "err", err)
		return nil
	}

	output, err := s.reasoningBackend.Run(ctx, fixGenerationSystemPrompt, string(input))
	if err != nil {
		slog.Warn("reasoning backend failed to generate a fix", "err", err, "attemptID", errorContext.AttemptID)
		return nil
	}

	var parsed fixGenerationOutput
	if err := decodeLLMOutput(output, &parsed); err != nil {
		slog.Warn("could not use fix of reasoning backend", "err", err, "attemptID", errorContext.AttemptID)
		return nil
	}

	payload, err := dtos.NewFixPayload(parsed.Type, parsed.Commands, parsed.Files)
	if err != nil {
		slog.Warn("reasoning backend returned an invalid fix payload", "err", err, "type", parsed.Type, "attemptID", errorContext.AttemptID)
		return nil
	}

	return &dtos.FixDraft{
		Description: parsed.Description,
		Payload:     payload,
		Reasoning:   parsed.Reasoning,
		Confidence:  *parsed.Confidence,
	}
}
