// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/monitoring"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/statemachine"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/datatypes"
)

var ErrNoAgentOutput = errors.New("agent loop finished without a summary or without files")

type generationService struct {
	agentLoop             shared.AgentLoop
	diagnosisService      shared.DiagnosisService
	fixGenerator          shared.FixGenerator
	fixExecutor           shared.FixExecutor
	policyGate            statemachine.PolicyGate
	messageRepository     shared.MessageRepository
	errorLogRepository    shared.ErrorLogRepository
	proposedFixRepository shared.ProposedFixRepository
}

var _ shared.GenerationService = (*generationService)(nil)

func NewGenerationService(
	agentLoop shared.AgentLoop,
	diagnosisService shared.DiagnosisService,
	fixGenerator shared.FixGenerator,
	fixExecutor shared.FixExecutor,
	policyGate statemachine.PolicyGate,
	messageRepository shared.MessageRepository,
	errorLogRepository shared.ErrorLogRepository,
	proposedFixRepository shared.ProposedFixRepository,
) *generationService {
	return &generationService{
		agentLoop:             agentLoop,
		diagnosisService:      diagnosisService,
		fixGenerator:          fixGenerator,
		fixExecutor:           fixExecutor,
		policyGate:            policyGate,
		messageRepository:     messageRepository,
		errorLogRepository:    errorLogRepository,
		proposedFixRepository: proposedFixRepository,
	}
}

// RunAttempt runs one generation attempt for the prompt and returns the conversation entries it
// persisted. It never fails: every attempt yields at least one entry.
func (s *generationService) RunAttempt(ctx context.Context, project models.Project, prompt string) (messages []models.Message) {
	attemptID := uuid.New()
	start := time.Now()
	outcome := "success"

	ctx, span := monitoring.StartSpan(ctx, "generation.attempt", attribute.String("attemptID", attemptID.String()), attribute.String("projectID", project.ID.String()))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("error handling of generation attempt panicked", r)
			messages = append(messages, s.recordGenericFailure(project.ID))
			outcome = "fallback"
		}
		monitoring.GenerationAttemptsTotal.WithLabelValues(outcome).Inc()
		monitoring.GenerationAttemptDuration.Observe(time.Since(start).Seconds())
	}()

	result, err := s.runAgentLoop(ctx, project, prompt)
	if err == nil && result.HasOutput() {
		message, persistErr := s.recordSuccess(project.ID, result)
		if persistErr == nil {
			slog.Info("generation attempt succeeded", "attemptID", attemptID, "projectID", project.ID)
			return []models.Message{message}
		}
		err = fmt.Errorf("could not persist generation result: %w", persistErr)
	}

	stage := dtos.StageException
	if err == nil {
		stage = dtos.StageNoOutput
		err = ErrNoAgentOutput
	}
	outcome = string(stage)

	errorContext := dtos.NewErrorContext(attemptID, project.ID, stage, err, prompt, result.SandboxID)
	slog.Warn("generation attempt failed", "attemptID", attemptID, "projectID", project.ID, "stage", stage, "err", err)

	messages, err = s.handleFailure(ctx, project, err, errorContext)
	if err != nil {
		monitoring.Alert("error handling of generation attempt failed", err)
		messages = append(messages, s.recordGenericFailure(project.ID))
		outcome = "fallback"
	}
	return messages
}

func (s *generationService) runAgentLoop(ctx context.Context, project models.Project, prompt string) (result dtos.AgentResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent loop panicked: %v", r)
		}
	}()
	return s.agentLoop.Run(ctx, project, prompt)
}

func (s *generationService) recordSuccess(projectID uuid.UUID, result dtos.AgentResult) (models.Message, error) {
	message := models.NewAssistantMessage(projectID, dtos.MessageTypeResult, result.Summary)
	fragment := models.Fragment{
		SandboxID:  result.SandboxID,
		SandboxURL: result.SandboxURL,
		Title:      result.Title,
		Files:      datatypes.NewJSONType(result.Files),
	}
	if err := s.messageRepository.CreateWithFragment(nil, &message, &fragment); err != nil {
		return models.Message{}, err
	}
	message.Fragment = &fragment
	return message, nil
}

// handleFailure diagnoses the failure, records it and routes a generated fix through the policy gate.
func (s *generationService) handleFailure(ctx context.Context, project models.Project, err error, errorContext dtos.ErrorContext) ([]models.Message, error) {
	diagnosis := s.diagnosisService.Diagnose(ctx, err, errorContext)

	errorMessage := models.NewAssistantMessage(project.ID, dtos.MessageTypeError, describeDiagnosis(diagnosis))
	errorLog := models.NewErrorLog(uuid.Nil, errorContext, diagnosis)
	if err := s.errorLogRepository.CreateWithMessage(nil, &errorMessage, &errorLog); err != nil {
		return nil, fmt.Errorf("could not persist error log: %w", err)
	}
	errorMessage.ErrorLog = &errorLog
	messages := []models.Message{errorMessage}

	draft := s.fixGenerator.GenerateFix(ctx, diagnosis, errorContext)
	if draft == nil {
		return messages, nil
	}

	status := s.policyGate.Decide(errorLog.Severity, draft.Confidence)
	if !statemachine.IsValidInitialStatus(status) {
		return messages, fmt.Errorf("policy gate returned invalid initial status %s", status)
	}

	fix := models.NewProposedFix(errorLog.ID, *draft, status, errorContext.SandboxID)
	if status == dtos.FixStatusAutoFixed {
		message, err := s.applyAutoFix(ctx, project.ID, &fix, *draft, errorContext.SandboxID)
		if err != nil {
			return messages, err
		}
		return append(messages, message), nil
	}

	content, err := json.Marshal(dtos.ApprovalRequestContent{
		Type:        dtos.ApprovalRequestContentType,
		ErrorLogID:  errorLog.ID,
		Description: draft.Description,
		Reasoning:   draft.Reasoning,
		Confidence:  draft.Confidence,
	})
	if err != nil {
		return messages, fmt.Errorf("could not marshal approval request: %w", err)
	}
	message := models.NewAssistantMessage(project.ID, dtos.MessageTypeApprovalRequest, string(content))

	if err := s.proposedFixRepository.CreateWithMessage(nil, &fix, &message); err != nil {
		return messages, fmt.Errorf("could not persist proposed fix: %w", err)
	}
	monitoring.ProposedFixesCreatedTotal.WithLabelValues(string(status)).Inc()
	slog.Info("proposed fix created", "fixID", fix.ID, "status", status, "errorLogID", errorLog.ID, "confidence", draft.Confidence)

	return append(messages, message), nil
}

// applyAutoFix stores the fix before the sandbox is touched. The sandbox is never changed
// without a fix row describing the change. The outcome is written onto that row afterwards,
// auto fixed fixes keep their status either way.
func (s *generationService) applyAutoFix(ctx context.Context, projectID uuid.UUID, fix *models.ProposedFix, draft dtos.FixDraft, sandboxID string) (models.Message, error) {
	now := time.Now()
	fix.ReviewedAt = &now
	if err := s.proposedFixRepository.Create(nil, fix); err != nil {
		return models.Message{}, fmt.Errorf("could not persist proposed fix: %w", err)
	}
	monitoring.ProposedFixesCreatedTotal.WithLabelValues(string(fix.Status)).Inc()

	result := s.fixExecutor.Execute(ctx, draft.Payload, sandboxID)

	var message models.Message
	updates := map[string]any{
		"reviewed_at": time.Now(),
	}
	if result.Success {
		updates["feedback"] = "Fix applied automatically."
		message = models.NewAssistantMessage(projectID, dtos.MessageTypeResult, fmt.Sprintf("Applied an automatic fix: %s", draft.Description))
	} else {
		updates["feedback"] = fmt.Sprintf("Automatic fix failed: %s", result.Error)
		updates["apply_attempts"] = 1
		updates["last_apply_error"] = result.Error
		message = models.NewAssistantMessage(projectID, dtos.MessageTypeError, fmt.Sprintf("An automatic fix was attempted but failed: %s", result.Error))
	}

	err := s.proposedFixRepository.Transaction(func(tx shared.DB) error {
		if err := s.proposedFixRepository.CompareAndSwap(tx, fix.ID, dtos.FixStatusAutoFixed, fix.Version, updates); err != nil {
			return err
		}
		return s.messageRepository.Create(tx, &message)
	})
	if err != nil {
		return models.Message{}, fmt.Errorf("could not record the outcome of an automatic fix: %w", err)
	}

	slog.Info("automatic fix applied", "fixID", fix.ID, "success", result.Success, "sandboxID", sandboxID)
	return message, nil
}

func (s *generationService) recordGenericFailure(projectID uuid.UUID) models.Message {
	message := models.NewAssistantMessage(projectID, dtos.MessageTypeError, dtos.GenericFailureMessage)
	if err := s.messageRepository.Create(nil, &message); err != nil {
		slog.Error("could not persist generic failure message", "projectID", projectID, "err", err)
	}
	return message
}

func describeDiagnosis(diagnosis dtos.Diagnosis) string {
	if len(diagnosis.SuggestedActions) == 0 {
		return diagnosis.Diagnostic
	}
	var b strings.Builder
	b.WriteString(diagnosis.Diagnostic)
	b.WriteString("\n\nSuggested actions:")
	for _, action := range diagnosis.SuggestedActions {
		b.WriteString("\n- ")
		b.WriteString(action)
	}
	return b.String()
}
