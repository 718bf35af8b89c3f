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
	"github.com/l3montree-dev/fixflow/utils"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// a claimed fix whose apply never finished becomes reviewable again after this lease
const ApplyLease = 15 * time.Minute

// executing a claimed fix is cut off before its lease runs out
const ApplyTimeout = ApplyLease - time.Minute

type approvalService struct {
	projectRepository     shared.ProjectRepository
	proposedFixRepository shared.ProposedFixRepository
	messageRepository     shared.MessageRepository
	errorLogRepository    shared.ErrorLogRepository
	fixExecutor           shared.FixExecutor
}

var _ shared.ApprovalService = (*approvalService)(nil)

func NewApprovalService(
	projectRepository shared.ProjectRepository,
	proposedFixRepository shared.ProposedFixRepository,
	messageRepository shared.MessageRepository,
	errorLogRepository shared.ErrorLogRepository,
	fixExecutor shared.FixExecutor,
) *approvalService {
	return &approvalService{
		projectRepository:     projectRepository,
		proposedFixRepository: proposedFixRepository,
		messageRepository:     messageRepository,
		errorLogRepository:    errorLogRepository,
		fixExecutor:           fixExecutor,
	}
}

func (s *approvalService) authorizeProject(projectID uuid.UUID, ownerID string) (models.Project, error) {
	project, err := s.projectRepository.Read(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, shared.NewNotFoundError("project not found")
		}
		return models.Project{}, fmt.Errorf("could not read project: %w", err)
	}
	if !project.IsOwnedBy(ownerID) {
		return models.Project{}, shared.NewForbiddenError("you are not allowed to access this project")
	}
	return project, nil
}

func (s *approvalService) loadForReview(fixID uuid.UUID, reviewerID string) (models.ProposedFix, models.Project, error) {
	fix, err := s.proposedFixRepository.Read(fixID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProposedFix{}, models.Project{}, shared.NewNotFoundError("fix not found")
		}
		return models.ProposedFix{}, models.Project{}, fmt.Errorf("could not read fix: %w", err)
	}

	project, err := s.projectRepository.GetProjectByProposedFixID(fixID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProposedFix{}, models.Project{}, shared.NewNotFoundError("fix not found")
		}
		return models.ProposedFix{}, models.Project{}, fmt.Errorf("could not read project of fix: %w", err)
	}

	if !project.IsOwnedBy(reviewerID) {
		return models.ProposedFix{}, models.Project{}, shared.NewForbiddenError("you are not allowed to review this fix")
	}
	return fix, project, nil
}

func checkReviewable(fix models.ProposedFix, event statemachine.FixEvent, now time.Time) error {
	if !statemachine.CanTransition(fix.Status, event) {
		return shared.NewConflictError("fix already processed")
	}
	if fix.IsBeingApplied(now, ApplyLease) {
		return shared.NewConflictError("fix is currently being applied")
	}
	return nil
}

func staleToConflict(err error) error {
	if errors.Is(err, shared.ErrStaleProposedFix) {
		return shared.NewConflictError("fix already processed")
	}
	return err
}

func countReview(action string, err error) {
	result := "success"
	switch {
	case err == nil:
	case errors.Is(err, shared.ErrConflict):
		result = "conflict"
	case errors.Is(err, shared.ErrNotFound), errors.Is(err, shared.ErrForbidden), errors.Is(err, shared.ErrBadRequest):
		result = "refused"
	default:
		result = "error"
	}
	monitoring.FixReviewTotal.WithLabelValues(action, result).Inc()
}

func (s *approvalService) ListPending(projectID uuid.UUID, ownerID string) ([]models.ProposedFix, error) {
	if _, err := s.authorizeProject(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.proposedFixRepository.ListByProject(projectID, utils.Ptr(dtos.FixStatusPending))
}

func (s *approvalService) ListAll(projectID uuid.UUID, ownerID string) ([]models.ProposedFix, error) {
	if _, err := s.authorizeProject(projectID, ownerID); err != nil {
		return nil, err
	}
	return s.proposedFixRepository.ListByProject(projectID, nil)
}

// Approve claims the fix, applies it against its sandbox session and finalizes the review.
// The claim bumps the version, so a fix is applied at most once per approval. A failed apply
// leaves the fix pending with the error recorded.
func (s *approvalService) Approve(ctx context.Context, fixID uuid.UUID, reviewerID string, feedback *string) (fix models.ProposedFix, result dtos.ExecutionResult, err error) {
	ctx, span := monitoring.StartSpan(ctx, "approval.approve", attribute.String("fixID", fixID.String()))
	defer span.End()
	defer func() { countReview("approve", err) }()

	fix, project, err := s.loadForReview(fixID, reviewerID)
	if err != nil {
		return models.ProposedFix{}, dtos.ExecutionResult{}, err
	}

	now := time.Now()
	if err := checkReviewable(fix, statemachine.FixEventApprove, now); err != nil {
		return models.ProposedFix{}, dtos.ExecutionResult{}, err
	}

	if err := s.proposedFixRepository.CompareAndSwap(nil, fix.ID, dtos.FixStatusPending, fix.Version, map[string]any{
		"applying_since": now,
	}); err != nil {
		return models.ProposedFix{}, dtos.ExecutionResult{}, staleToConflict(err)
	}
	claimedVersion := fix.Version + 1

	sandboxID := fix.GetSandboxID()
	result = dtos.ExecutionResult{Success: true}
	if sandboxID != "" {
		execCtx, cancel := context.WithTimeout(ctx, ApplyTimeout)
		result = s.fixExecutor.Execute(execCtx, fix.GetPayload(), sandboxID)
		cancel()
	}

	event := statemachine.FixEventApprove
	if !result.Success {
		event = statemachine.FixEventApplyFailed
	}
	next, err := statemachine.Transition(dtos.FixStatusPending, event)
	if err != nil {
		return models.ProposedFix{}, result, err
	}

	feedbackText, messageType, content := describeApproval(fix, sandboxID != "", result)
	if feedback != nil && strings.TrimSpace(*feedback) != "" {
		feedbackText = strings.TrimSpace(*feedback)
	}

	updates := map[string]any{
		"status":         next,
		"applying_since": nil,
		"reviewed_by":    reviewerID,
		"reviewed_at":    time.Now(),
		"feedback":       feedbackText,
	}
	if !result.Success {
		updates["apply_attempts"] = fix.ApplyAttempts + 1
		updates["last_apply_error"] = result.Error
	}

	message := models.NewAssistantMessage(project.ID, messageType, content)
	err = s.proposedFixRepository.Transaction(func(tx shared.DB) error {
		if err := s.proposedFixRepository.CompareAndSwap(tx, fix.ID, dtos.FixStatusPending, claimedVersion, updates); err != nil {
			return err
		}
		return s.messageRepository.Create(tx, &message)
	})
	if err != nil {
		if !errors.Is(err, shared.ErrStaleProposedFix) {
			monitoring.Alert("could not finalize approved fix", err)
		}
		return models.ProposedFix{}, result, staleToConflict(err)
	}

	slog.Info("fix reviewed", "fixID", fix.ID, "reviewer", reviewerID, "status", next, "applied", sandboxID != "" && result.Success)

	fix, err = s.proposedFixRepository.Read(fix.ID)
	if err != nil {
		return models.ProposedFix{}, result, fmt.Errorf("could not read approved fix: %w", err)
	}
	return fix, result, nil
}

func describeApproval(fix models.ProposedFix, hasSandbox bool, result dtos.ExecutionResult) (string, dtos.MessageType, string) {
	switch {
	case !hasSandbox:
		return "Fix approved. No sandbox session was attached, so nothing was applied.",
			dtos.MessageTypeResult,
			fmt.Sprintf("Fix approved: %s. No sandbox session was attached, so it was not applied.", fix.Description)
	case result.Success:
		return "Fix applied successfully.",
			dtos.MessageTypeResult,
			fmt.Sprintf("Approved fix applied: %s", fix.Description)
	default:
		return fmt.Sprintf("Fix could not be applied: %s", result.Error),
			dtos.MessageTypeError,
			fmt.Sprintf("Approved fix could not be applied: %s. The fix stays pending and can be approved again.", result.Error)
	}
}

// Reject requires a reason. Nothing is read or written without one.
func (s *approvalService) Reject(ctx context.Context, fixID uuid.UUID, reviewerID string, feedback string) (fix models.ProposedFix, err error) {
	_, span := monitoring.StartSpan(ctx, "approval.reject", attribute.String("fixID", fixID.String()))
	defer span.End()
	defer func() { countReview("reject", err) }()

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return models.ProposedFix{}, shared.NewBadRequestError("feedback is required to reject a fix")
	}

	fix, project, err := s.loadForReview(fixID, reviewerID)
	if err != nil {
		return models.ProposedFix{}, err
	}
	if err := checkReviewable(fix, statemachine.FixEventReject, time.Now()); err != nil {
		return models.ProposedFix{}, err
	}

	next, err := statemachine.Transition(fix.Status, statemachine.FixEventReject)
	if err != nil {
		return models.ProposedFix{}, err
	}

	message := models.NewAssistantMessage(project.ID, dtos.MessageTypeResult, fmt.Sprintf("Fix rejected: %s", feedback))
	err = s.proposedFixRepository.Transaction(func(tx shared.DB) error {
		if err := s.proposedFixRepository.CompareAndSwap(tx, fix.ID, dtos.FixStatusPending, fix.Version, map[string]any{
			"status":      next,
			"reviewed_by": reviewerID,
			"reviewed_at": time.Now(),
			"feedback":    feedback,
		}); err != nil {
			return err
		}
		return s.messageRepository.Create(tx, &message)
	})
	if err != nil {
		return models.ProposedFix{}, staleToConflict(err)
	}

	slog.Info("fix reviewed", "fixID", fix.ID, "reviewer", reviewerID, "status", next)

	fix, err = s.proposedFixRepository.Read(fix.ID)
	if err != nil {
		return models.ProposedFix{}, fmt.Errorf("could not read rejected fix: %w", err)
	}
	return fix, nil
}

func (s *approvalService) Stats(ctx context.Context, projectID uuid.UUID, ownerID string) (dtos.ErrorStatsDTO, error) {
	if _, err := s.authorizeProject(projectID, ownerID); err != nil {
		return dtos.ErrorStatsDTO{}, err
	}

	var stats dtos.ErrorStatsDTO
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.errorLogRepository.CountByCategoryAndSeverity(projectID)
		if err != nil {
			return fmt.Errorf("could not count error logs: %w", err)
		}
		stats.ByCategoryAndSeverity = counts
		for _, c := range counts {
			stats.TotalErrors += c.Count
		}
		return nil
	})
	g.Go(func() error {
		counts, err := s.proposedFixRepository.CountByStatus(projectID)
		if err != nil {
			return fmt.Errorf("could not count fixes: %w", err)
		}
		stats.FixesByStatus = counts
		for _, c := range counts {
			stats.TotalFixes += c.Count
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return dtos.ErrorStatsDTO{}, err
	}
	return stats, nil
}

// EscalateFailedFixes flags pending fixes whose apply failed and which were not touched
// for gracePeriod. Each of them gets exactly one ERROR entry. They stay pending.
func (s *approvalService) EscalateFailedFixes(ctx context.Context, gracePeriod time.Duration) (int, error) {
	fixes, err := s.proposedFixRepository.ListFailedPendingBefore(time.Now().Add(-gracePeriod))
	if err != nil {
		return 0, fmt.Errorf("could not list failed fixes: %w", err)
	}

	escalated := 0
	for _, fix := range fixes {
		if ctx.Err() != nil {
			return escalated, ctx.Err()
		}

		project, err := s.projectRepository.GetProjectByProposedFixID(fix.ID)
		if err != nil {
			slog.Error("could not resolve project of failed fix", "fixID", fix.ID, "err", err)
			continue
		}

		message := models.NewAssistantMessage(project.ID, dtos.MessageTypeError, fmt.Sprintf(
			"The fix %q could not be applied after %d attempt(s) and needs manual attention. Last error: %s",
			fix.Description, fix.ApplyAttempts, strings.TrimSpace(utils.SafeDereference(fix.LastApplyError)),
		))

		err = s.proposedFixRepository.Transaction(func(tx shared.DB) error {
			if err := s.proposedFixRepository.CompareAndSwap(tx, fix.ID, dtos.FixStatusPending, fix.Version, map[string]any{
				"escalated_at": time.Now(),
			}); err != nil {
				return err
			}
			return s.messageRepository.Create(tx, &message)
		})
		if err != nil {
			if errors.Is(err, shared.ErrStaleProposedFix) {
				// reviewed in the meantime
				continue
			}
			slog.Error("could not escalate failed fix", "fixID", fix.ID, "err", err)
			continue
		}
		escalated++
		monitoring.EscalatedFixesTotal.Inc()
	}
	return escalated, nil
}
