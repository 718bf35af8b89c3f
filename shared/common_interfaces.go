package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/utils"
)

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	ListByOwner(ownerID string) ([]models.Project, error)
	ReadBySlug(ownerID string, slug string) (models.Project, error)
	GetProjectByProposedFixID(fixID uuid.UUID) (models.Project, error)
}

type MessageRepository interface {
	utils.Repository[uuid.UUID, models.Message, DB]
	ListByProject(projectID uuid.UUID) ([]models.Message, error)
	CreateWithFragment(tx DB, message *models.Message, fragment *models.Fragment) error
	CountByProject(projectID uuid.UUID) (int64, error)
}

type ErrorLogRepository interface {
	CreateWithMessage(tx DB, message *models.Message, errorLog *models.ErrorLog) error
	Read(id uuid.UUID) (models.ErrorLog, error)
	ReadByMessageID(messageID uuid.UUID) (models.ErrorLog, error)
	CountByCategoryAndSeverity(projectID uuid.UUID) ([]dtos.CategorySeverityCount, error)
}

// ProposedFixRepository has no generic Save or Delete. Every state change goes through CompareAndSwap.
type ProposedFixRepository interface {
	utils.Transactioner[DB]
	Create(tx DB, fix *models.ProposedFix) error
	Read(id uuid.UUID) (models.ProposedFix, error)
	CreateWithMessage(tx DB, fix *models.ProposedFix, message *models.Message) error
	ReadByErrorLogID(errorLogID uuid.UUID) (models.ProposedFix, error)
	ListByProject(projectID uuid.UUID, status *dtos.FixStatus) ([]models.ProposedFix, error)
	CountByStatus(projectID uuid.UUID) ([]dtos.FixStatusCount, error)
	CompareAndSwap(tx DB, fixID uuid.UUID, expectedStatus dtos.FixStatus, expectedVersion int, updates map[string]any) error
	ListFailedPendingBefore(before time.Time) ([]models.ProposedFix, error)
}

// ReasoningBackend is the external LLM. The output is expected to be JSON.
type ReasoningBackend interface {
	Run(ctx context.Context, systemPrompt string, input string) (string, error)
}

type SandboxSession struct {
	ID  string
	URL string
}

// SandboxClient reaches an ephemeral sandbox by its session id.
type SandboxClient interface {
	CreateSession(ctx context.Context) (SandboxSession, error)
	// RunCommand streams the output chunks to onOutput (may be nil) and returns the collected stdout.
	// A non-zero exit code or an unreachable sandbox is an error.
	RunCommand(ctx context.Context, sandboxID string, command string, onOutput func(chunk string)) (string, error)
	WriteFile(ctx context.Context, sandboxID string, path string, content string) error
}

// AgentLoop is the generic code generation loop.
type AgentLoop interface {
	Run(ctx context.Context, project models.Project, prompt string) (dtos.AgentResult, error)
}

type DiagnosisService interface {
	Diagnose(ctx context.Context, err error, errorContext dtos.ErrorContext) dtos.Diagnosis
}

type FixGenerator interface {
	GenerateFix(ctx context.Context, diagnosis dtos.Diagnosis, errorContext dtos.ErrorContext) *dtos.FixDraft
}

type FixExecutor interface {
	Execute(ctx context.Context, payload dtos.FixPayload, sandboxID string) dtos.ExecutionResult
}

type ApprovalService interface {
	ListPending(projectID uuid.UUID, ownerID string) ([]models.ProposedFix, error)
	ListAll(projectID uuid.UUID, ownerID string) ([]models.ProposedFix, error)
	Approve(ctx context.Context, fixID uuid.UUID, reviewerID string, feedback *string) (models.ProposedFix, dtos.ExecutionResult, error)
	Reject(ctx context.Context, fixID uuid.UUID, reviewerID string, feedback string) (models.ProposedFix, error)
	Stats(ctx context.Context, projectID uuid.UUID, ownerID string) (dtos.ErrorStatsDTO, error)
	EscalateFailedFixes(ctx context.Context, gracePeriod time.Duration) (int, error)
}

type GenerationService interface {
	RunAttempt(ctx context.Context, project models.Project, prompt string) []models.Message
}

type ProjectService interface {
	Create(ownerID string, req dtos.ProjectCreateRequest) (models.Project, error)
}
