package dtos

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ErrorCategory string

const (
	ErrorCategoryCompilation    ErrorCategory = "COMPILATION"
	ErrorCategoryDependency     ErrorCategory = "DEPENDENCY"
	ErrorCategorySyntax         ErrorCategory = "SYNTAX"
	ErrorCategoryLogic          ErrorCategory = "LOGIC"
	ErrorCategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
	ErrorCategoryUserInput      ErrorCategory = "USER_INPUT"
)

type ErrorSeverity string

const (
	ErrorSeverityLow      ErrorSeverity = "LOW"
	ErrorSeverityMedium   ErrorSeverity = "MEDIUM"
	ErrorSeverityHigh     ErrorSeverity = "HIGH"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

func (c ErrorCategory) IsValid() bool {
	switch c {
	case ErrorCategoryCompilation, ErrorCategoryDependency, ErrorCategorySyntax, ErrorCategoryLogic, ErrorCategoryInfrastructure, ErrorCategoryUserInput:
		return true
	}
	return false
}

func (s ErrorSeverity) IsValid() bool {
	switch s {
	case ErrorSeverityLow, ErrorSeverityMedium, ErrorSeverityHigh, ErrorSeverityCritical:
		return true
	}
	return false
}

// ExecutionStage marks where inside a generation attempt the failure happened.
type ExecutionStage string

const (
	// the agent loop returned, but without a summary or without any files
	StageNoOutput ExecutionStage = "no_output"
	// the agent loop (or anything around it) returned an error or panicked
	StageException ExecutionStage = "exception"
)

// Diagnosis is the structured analysis of a single failure.
type Diagnosis struct {
	Category         ErrorCategory `json:"category" validate:"required"`
	Severity         ErrorSeverity `json:"severity" validate:"required"`
	Diagnostic       string        `json:"diagnostic" validate:"required"`
	CanAutoFix       bool          `json:"canAutoFix"`
	Confidence       float64       `json:"confidence" validate:"gte=0,lte=1"`
	SuggestedActions []string      `json:"suggestedActions"`
}

func (d Diagnosis) Validate() error {
	if !d.Category.IsValid() {
		return fmt.Errorf("invalid error category %q", d.Category)
	}
	if !d.Severity.IsValid() {
		return fmt.Errorf("invalid error severity %q", d.Severity)
	}
	if d.Confidence < 0 || d.Confidence > 1 {
		return fmt.Errorf("confidence %f out of range", d.Confidence)
	}
	return nil
}

const FallbackDiagnostic = "Failed to analyze error"

// FallbackDiagnosis is recorded whenever the reasoning backend cannot produce a usable analysis.
func FallbackDiagnosis() Diagnosis {
	return Diagnosis{
		Category:         ErrorCategoryInfrastructure,
		Severity:         ErrorSeverityHigh,
		Diagnostic:       FallbackDiagnostic,
		CanAutoFix:       false,
		Confidence:       0,
		SuggestedActions: []string{},
	}
}

// ErrorContext describes a failed generation attempt in a machine readable way.
type ErrorContext struct {
	AttemptID  uuid.UUID      `json:"attemptId"`
	ProjectID  uuid.UUID      `json:"projectId"`
	Stage      ExecutionStage `json:"stage"`
	Error      string         `json:"error"`
	ErrorType  string         `json:"errorType"`
	Prompt     string         `json:"prompt"`
	SandboxID  string         `json:"sandboxId,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

// NewErrorContext captures the original fault together with the stage marker.
func NewErrorContext(attemptID, projectID uuid.UUID, stage ExecutionStage, err error, prompt, sandboxID string) ErrorContext {
	ec := ErrorContext{
		AttemptID:  attemptID,
		ProjectID:  projectID,
		Stage:      stage,
		Prompt:     prompt,
		SandboxID:  sandboxID,
		OccurredAt: time.Now(),
	}
	if err != nil {
		ec.Error = err.Error()
		ec.ErrorType = fmt.Sprintf("%T", err)
	}
	return ec
}

// ErrorLogPayload is persisted as the structured payload of an error log.
type ErrorLogPayload struct {
	Context   ErrorContext `json:"context"`
	Diagnosis Diagnosis    `json:"diagnosis"`
}

type ErrorLogDTO struct {
	ID         uuid.UUID     `json:"id"`
	MessageID  uuid.UUID     `json:"messageId"`
	Category   ErrorCategory `json:"category"`
	Severity   ErrorSeverity `json:"severity"`
	Diagnostic string        `json:"diagnostic"`
	Context    ErrorContext  `json:"context"`
	Diagnosis  Diagnosis     `json:"diagnosis"`
	CreatedAt  time.Time     `json:"createdAt"`
}

type CategorySeverityCount struct {
	Category ErrorCategory `json:"category" gorm:"column:category"`
	Severity ErrorSeverity `json:"severity" gorm:"column:severity"`
	Count    int64         `json:"count" gorm:"column:count"`
}

type FixStatusCount struct {
	Status FixStatus `json:"status" gorm:"column:status"`
	Count  int64     `json:"count" gorm:"column:count"`
}

type ErrorStatsDTO struct {
	ByCategoryAndSeverity []CategorySeverityCount `json:"byCategoryAndSeverity"`
	FixesByStatus         []FixStatusCount        `json:"fixesByStatus"`
	TotalErrors           int64                   `json:"totalErrors"`
	TotalFixes            int64                   `json:"totalFixes"`
}
