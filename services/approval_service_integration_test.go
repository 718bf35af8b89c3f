//go:build integration

package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/l3montree-dev/fixflow/database/repositories"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/integrationtestutil"
	"github.com/l3montree-dev/fixflow/mocks"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConcurrentReviewsOnPostgres(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	r := testRepositories{
		db:                    db,
		projectRepository:     repositories.NewProjectRepository(db),
		messageRepository:     repositories.NewMessageRepository(db),
		errorLogRepository:    repositories.NewErrorLogRepository(db),
		proposedFixRepository: repositories.NewProposedFixRepository(db),
	}
	executor := mocks.NewFixExecutor(t)
	s := newTestApprovalService(r, executor)
	project := createProject(t, r, "owner", "app")
	fix := createProposedFix(t, r, project, dtos.FixStatusPending, "sbx-1")

	executor.On("Execute", mock.Anything, mock.Anything, "sbx-1").Return(dtos.ExecutionResult{Success: true}).Once().Maybe()

	var succeeded, conflicted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, _, err = s.Approve(context.Background(), fix.ID, "owner", nil)
			} else {
				_, err = s.Reject(context.Background(), fix.ID, "owner", "not like this")
			}
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, shared.ErrConflict):
				conflicted.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(9), conflicted.Load())

	stored, err := r.proposedFixRepository.Read(fix.ID)
	require.NoError(t, err)
	assert.True(t, stored.Status.IsTerminal())
}
