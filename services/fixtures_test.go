package services

import (
	"testing"

	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/database/repositories"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/integrationtestutil"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/stretchr/testify/require"
)

type testRepositories struct {
	db                    shared.DB
	projectRepository     shared.ProjectRepository
	messageRepository     shared.MessageRepository
	errorLogRepository    shared.ErrorLogRepository
	proposedFixRepository shared.ProposedFixRepository
}

func newTestRepositories(t *testing.T) testRepositories {
	db := integrationtestutil.InitSQLiteDatabase(t)
	return testRepositories{
		db:                    db,
		projectRepository:     repositories.NewProjectRepository(db),
		messageRepository:     repositories.NewMessageRepository(db),
		errorLogRepository:    repositories.NewErrorLogRepository(db),
		proposedFixRepository: repositories.NewProposedFixRepository(db),
	}
}

func createProject(t *testing.T, r testRepositories, ownerID string, slug string) models.Project {
	project := models.Project{Name: slug, Slug: slug, OwnerID: ownerID}
	require.NoError(t, r.projectRepository.Create(nil, &project))
	return project
}

// createProposedFix persists the complete chain message -> error log -> fix.
func createProposedFix(t *testing.T, r testRepositories, project models.Project, status dtos.FixStatus, sandboxID string) models.ProposedFix {
	message := models.NewAssistantMessage(project.ID, dtos.MessageTypeError, "the build failed")
	errorContext := dtos.NewErrorContext(project.ID, project.ID, dtos.StageException, nil, "build me a todo app", sandboxID)
	errorLog := models.NewErrorLog(message.ID, errorContext, dtos.Diagnosis{
		Category:   dtos.ErrorCategoryDependency,
		Severity:   dtos.ErrorSeverityMedium,
		Diagnostic: "missing dependency",
		CanAutoFix: true,
		Confidence: 0.9,
	})
	require.NoError(t, r.errorLogRepository.CreateWithMessage(nil, &message, &errorLog))

	payload, err := dtos.NewMultiStepFix([]string{"npm install left-pad"}, []dtos.FileChange{{Path: "src/index.ts", Content: "export {}"}})
	require.NoError(t, err)

	fix := models.NewProposedFix(errorLog.ID, dtos.FixDraft{
		Description: "install left-pad",
		Payload:     payload,
		Reasoning:   "the import can not be resolved",
		Confidence:  0.6,
	}, status, sandboxID)
	require.NoError(t, r.proposedFixRepository.Create(nil, &fix))
	return fix
}

func countMessages(t *testing.T, r testRepositories, project models.Project) int64 {
	count, err := r.messageRepository.CountByProject(project.ID)
	require.NoError(t, err)
	return count
}
