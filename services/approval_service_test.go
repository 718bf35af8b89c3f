package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/mocks"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestApprovalService(r testRepositories, executor shared.FixExecutor) *approvalService {
	return NewApprovalService(r.projectRepository, r.proposedFixRepository, r.messageRepository, r.errorLogRepository, executor)
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("should return not found for an unknown fix", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))

		_, _, err := s.Approve(ctx, uuid.New(), "owner", nil)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should return forbidden if the reviewer does not own the project", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		_, _, err := s.Approve(ctx, fix.ID, "intruder", nil)
		assert.ErrorIs(t, err, shared.ErrForbidden)

		stored, err := r.proposedFixRepository.Read(fix.ID)
		require.NoError(t, err)
		assert.Equal(t, dtos.FixStatusPending, stored.Status)
		assert.Equal(t, fix.Version, stored.Version)
	})

	t.Run("should apply the fix against its sandbox and mark it approved", func(t *testing.T) {
		r := newTestRepositories(t)
		executor := mocks.NewFixExecutor(t)
		s := newTestApprovalService(r, executor)
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")
		before := countMessages(t, r, project)

		executor.On("Execute", mock.Anything, mock.MatchedBy(func(p dtos.FixPayload) bool {
			return p.Type() == dtos.FixTypeMultiStep
		}), "sbx-1").Return(dtos.ExecutionResult{Success: true}).Once()

		approved, result, err := s.Approve(ctx, fix.ID, "owner", nil)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, dtos.FixStatusApproved, approved.Status)
		assert.Equal(t, "owner", *approved.ReviewedBy)
		assert.NotNil(t, approved.ReviewedAt)
		assert.Equal(t, "Fix applied successfully.", *approved.Feedback)
		assert.Nil(t, approved.ApplyingSince)
		// claim and finalize
		assert.Equal(t, fix.Version+2, approved.Version)

		messages, err := r.messageRepository.ListByProject(project.ID)
		require.NoError(t, err)
		assert.Equal(t, before+1, int64(len(messages)))
		last := messages[len(messages)-1]
		assert.Equal(t, dtos.MessageRoleAssistant, last.Role)
		assert.Equal(t, dtos.MessageTypeResult, last.Type)
		assert.Contains(t, last.Content, "install left-pad")
	})

	t.Run("should keep the feedback of the reviewer", func(t *testing.T) {
		r := newTestRepositories(t)
		executor := mocks.NewFixExecutor(t)
		s := newTestApprovalService(r, executor)
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		executor.On("Execute", mock.Anything, mock.Anything, "sbx-1").Return(dtos.ExecutionResult{Success: true})

		approved, _, err := s.Approve(ctx, fix.ID, "owner", utils.Ptr("  looks good  "))
		require.NoError(t, err)
		assert.Equal(t, "looks good", *approved.Feedback)
	})

	t.Run("should approve without executing if the fix references no sandbox", func(t *testing.T) {
		r := newTestRepositories(t)
		// any call to Execute fails the test
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "")

		approved, result, err := s.Approve(ctx, fix.ID, "owner", nil)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, dtos.FixStatusApproved, approved.Status)
		assert.Contains(t, *approved.Feedback, "nothing was applied")
	})

	t.Run("should keep the fix pending if applying it failed and allow a retry", func(t *testing.T) {
		r := newTestRepositories(t)
		executor := mocks.NewFixExecutor(t)
		s := newTestApprovalService(r, executor)
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		executor.On("Execute", mock.Anything, mock.Anything, "sbx-1").Return(dtos.ExecutionResult{Success: false, Error: "command 1 (\"npm install left-pad\") failed: exit 1"}).Once()

		pending, result, err := s.Approve(ctx, fix.ID, "owner", nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, dtos.FixStatusPending, pending.Status)
		assert.Equal(t, 1, pending.ApplyAttempts)
		assert.Contains(t, *pending.LastApplyError, "exit 1")
		assert.Nil(t, pending.ApplyingSince)

		messages, err := r.messageRepository.ListByProject(project.ID)
		require.NoError(t, err)
		assert.Equal(t, dtos.MessageTypeError, messages[len(messages)-1].Type)

		executor.On("Execute", mock.Anything, mock.Anything, "sbx-1").Return(dtos.ExecutionResult{Success: true}).Once()

		approved, result, err := s.Approve(ctx, fix.ID, "owner", nil)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, dtos.FixStatusApproved, approved.Status)
		assert.Equal(t, 1, approved.ApplyAttempts)
	})

	t.Run("should return a conflict for a rejected fix and not add a conversation entry", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		_, err := s.Reject(ctx, fix.ID, "owner", "wrong package")
		require.NoError(t, err)
		before := countMessages(t, r, project)

		_, _, err = s.Approve(ctx, fix.ID, "owner", nil)
		assert.ErrorIs(t, err, shared.ErrConflict)
		assert.Equal(t, before, countMessages(t, r, project))
	})

	t.Run("should return a conflict for an auto fixed fix", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusAutoFixed, "sbx-1")

		_, _, err := s.Approve(ctx, fix.ID, "owner", nil)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("should return a conflict while another review applies the fix", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		require.NoError(t, r.db.Model(&models.ProposedFix{}).Where("id = ?", fix.ID).UpdateColumn("applying_since", time.Now()).Error)

		_, _, err := s.Approve(ctx, fix.ID, "owner", nil)
		assert.ErrorIs(t, err, shared.ErrConflict)
		_, err = s.Reject(ctx, fix.ID, "owner", "no")
		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("should allow a review again once the apply lease expired", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		require.NoError(t, r.db.Model(&models.ProposedFix{}).Where("id = ?", fix.ID).UpdateColumn("applying_since", time.Now().Add(-2*ApplyLease)).Error)

		rejected, err := s.Reject(ctx, fix.ID, "owner", "abandoned")
		require.NoError(t, err)
		assert.Equal(t, dtos.FixStatusRejected, rejected.Status)
	})

	t.Run("should apply a fix exactly once if it is approved concurrently", func(t *testing.T) {
		r := newTestRepositories(t)
		executor := mocks.NewFixExecutor(t)
		s := newTestApprovalService(r, executor)
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		executor.On("Execute", mock.Anything, mock.Anything, "sbx-1").Return(dtos.ExecutionResult{Success: true}).Once()

		const reviewers = 8
		errs := make([]error, reviewers)
		var wg sync.WaitGroup
		for i := 0; i < reviewers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _, errs[i] = s.Approve(ctx, fix.ID, "owner", nil)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, shared.ErrConflict)
		}
		assert.Equal(t, 1, succeeded)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("should refuse an empty feedback without touching the fix", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")
		before := countMessages(t, r, project)

		for _, feedback := range []string{"", "   ", "\n\t"} {
			_, err := s.Reject(ctx, fix.ID, "owner", feedback)
			assert.ErrorIs(t, err, shared.ErrBadRequest)
		}

		stored, err := r.proposedFixRepository.Read(fix.ID)
		require.NoError(t, err)
		assert.Equal(t, dtos.FixStatusPending, stored.Status)
		assert.Equal(t, fix.Version, stored.Version)
		assert.Nil(t, stored.Feedback)
		assert.Equal(t, before, countMessages(t, r, project))
	})

	t.Run("should refuse an empty feedback before checking whether the fix exists", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))

		_, err := s.Reject(ctx, uuid.New(), "owner", "")
		assert.ErrorIs(t, err, shared.ErrBadRequest)
	})

	t.Run("should reject a pending fix and record the reason", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		rejected, err := s.Reject(ctx, fix.ID, "owner", "wrong package")
		require.NoError(t, err)
		assert.Equal(t, dtos.FixStatusRejected, rejected.Status)
		assert.Equal(t, "wrong package", *rejected.Feedback)
		assert.Equal(t, "owner", *rejected.ReviewedBy)

		messages, err := r.messageRepository.ListByProject(project.ID)
		require.NoError(t, err)
		assert.Contains(t, messages[len(messages)-1].Content, "wrong package")
	})

	t.Run("should return not found and forbidden like approve", func(t *testing.T) {
		r := newTestRepositories(t)
		s := newTestApprovalService(r, mocks.NewFixExecutor(t))
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		_, err := s.Reject(ctx, uuid.New(), "owner", "no")
		assert.ErrorIs(t, err, shared.ErrNotFound)
		_, err = s.Reject(ctx, fix.ID, "intruder", "no")
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("should let exactly one of a concurrent approve and reject win", func(t *testing.T) {
		r := newTestRepositories(t)
		executor := mocks.NewFixExecutor(t)
		s := newTestApprovalService(r, executor)
		project := createProject(t, r, "owner", "app")
		fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

		executor.On("Execute", mock.Anything, mock.Anything, "sbx-1").Return(dtos.ExecutionResult{Success: true}).Maybe()

		var approveErr, rejectErr error
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _, approveErr = s.Approve(ctx, fix.ID, "owner", nil)
		}()
		go func() {
			defer wg.Done()
			_, rejectErr = s.Reject(ctx, fix.ID, "owner", "not needed")
		}()
		wg.Wait()

		assert.True(t, (approveErr == nil) != (rejectErr == nil), "exactly one review must succeed")
		loser := approveErr
		if loser == nil {
			loser = rejectErr
		}
		assert.True(t, errors.Is(loser, shared.ErrConflict))

		stored, err := r.proposedFixRepository.Read(fix.ID)
		require.NoError(t, err)
		if approveErr == nil {
			assert.Equal(t, dtos.FixStatusApproved, stored.Status)
		} else {
			assert.Equal(t, dtos.FixStatusRejected, stored.Status)
		}
	})
}

func TestListAndStats(t *testing.T) {
	ctx := context.Background()
	r := newTestRepositories(t)
	s := newTestApprovalService(r, mocks.NewFixExecutor(t))
	project := createProject(t, r, "owner", "app")
	other := createProject(t, r, "owner", "other")

	pending := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")
	autoFixed := createProposedFix(t, r, project, dtos.FixStatusAutoFixed, "sbx-1")
	createProposedFix(t, r, other, dtos.FixStatusPending, "sbx-2")

	t.Run("should only list the pending fixes of the project", func(t *testing.T) {
		fixes, err := s.ListPending(project.ID, "owner")
		require.NoError(t, err)
		require.Len(t, fixes, 1)
		assert.Equal(t, pending.ID, fixes[0].ID)
		require.NotNil(t, fixes[0].ErrorLog)
		assert.Equal(t, dtos.ErrorCategoryDependency, fixes[0].ErrorLog.Category)
	})

	t.Run("should list all fixes of the project newest first", func(t *testing.T) {
		fixes, err := s.ListAll(project.ID, "owner")
		require.NoError(t, err)
		require.Len(t, fixes, 2)
		assert.Equal(t, autoFixed.ID, fixes[0].ID)
		assert.Equal(t, pending.ID, fixes[1].ID)
	})

	t.Run("should scope the lists to the owner", func(t *testing.T) {
		_, err := s.ListPending(project.ID, "intruder")
		assert.ErrorIs(t, err, shared.ErrForbidden)
		_, err = s.ListAll(uuid.New(), "owner")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should aggregate the error statistics of the project", func(t *testing.T) {
		stats, err := s.Stats(ctx, project.ID, "owner")
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.TotalErrors)
		assert.Equal(t, int64(2), stats.TotalFixes)
		require.Len(t, stats.ByCategoryAndSeverity, 1)
		assert.Equal(t, dtos.ErrorCategoryDependency, stats.ByCategoryAndSeverity[0].Category)
		assert.Equal(t, dtos.ErrorSeverityMedium, stats.ByCategoryAndSeverity[0].Severity)
		assert.ElementsMatch(t, []dtos.FixStatusCount{
			{Status: dtos.FixStatusAutoFixed, Count: 1},
			{Status: dtos.FixStatusPending, Count: 1},
		}, stats.FixesByStatus)
	})
}

func TestEscalateFailedFixes(t *testing.T) {
	ctx := context.Background()
	r := newTestRepositories(t)
	s := newTestApprovalService(r, mocks.NewFixExecutor(t))
	project := createProject(t, r, "owner", "app")

	failed := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")
	fresh := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")
	untouched := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, r.db.Model(&models.ProposedFix{}).Where("id = ?", failed.ID).UpdateColumns(map[string]any{
		"apply_attempts":   2,
		"last_apply_error": "exit 1",
		"updated_at":       old,
	}).Error)
	require.NoError(t, r.db.Model(&models.ProposedFix{}).Where("id = ?", fresh.ID).UpdateColumns(map[string]any{
		"apply_attempts": 1,
	}).Error)
	require.NoError(t, r.db.Model(&models.ProposedFix{}).Where("id = ?", untouched.ID).UpdateColumns(map[string]any{
		"updated_at": old,
	}).Error)
	before := countMessages(t, r, project)

	escalated, err := s.EscalateFailedFixes(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, escalated)
	assert.Equal(t, before+1, countMessages(t, r, project))

	stored, err := r.proposedFixRepository.Read(failed.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.EscalatedAt)
	assert.Equal(t, dtos.FixStatusPending, stored.Status)

	t.Run("should escalate a fix only once", func(t *testing.T) {
		escalated, err := s.EscalateFailedFixes(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 0, escalated)
	})
}
