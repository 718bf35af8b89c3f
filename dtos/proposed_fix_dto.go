package dtos

import (
	"time"

	"github.com/google/uuid"
)

type FixStatus string

const (
	FixStatusPending   FixStatus = "PENDING"
	FixStatusApproved  FixStatus = "APPROVED"
	FixStatusRejected  FixStatus = "REJECTED"
	FixStatusAutoFixed FixStatus = "AUTO_FIXED"
)

func (s FixStatus) IsTerminal() bool {
	return s == FixStatusApproved || s == FixStatusRejected || s == FixStatusAutoFixed
}

// FixDraft is a remediation proposal that has not been persisted yet.
type FixDraft struct {
	Description string
	Payload     FixPayload
	Reasoning   string
	Confidence  float64
}

// ExecutionResult is the outcome of applying a fix payload against a sandbox.
type ExecutionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

const ApprovalRequestContentType = "approval_request"

// ApprovalRequestContent is serialized as the content of an APPROVAL_REQUEST message.
type ApprovalRequestContent struct {
	Type        string    `json:"type"`
	ErrorLogID  uuid.UUID `json:"errorLogId"`
	Description string    `json:"description"`
	Reasoning   string    `json:"reasoning"`
	Confidence  float64   `json:"confidence"`
}

type ProposedFixDTO struct {
	ID             uuid.UUID   `json:"id"`
	ErrorLogID     uuid.UUID   `json:"errorLogId"`
	Description    string      `json:"description"`
	FixType        FixType     `json:"fixType"`
	Payload        FixEnvelope `json:"payload"`
	Reasoning      string      `json:"reasoning"`
	Confidence     float64     `json:"confidence"`
	Status         FixStatus   `json:"status"`
	SandboxID      *string     `json:"sandboxId"`
	ReviewedBy     *string     `json:"reviewedBy"`
	ReviewedAt     *time.Time  `json:"reviewedAt"`
	Feedback       *string     `json:"feedback"`
	ApplyAttempts  int         `json:"applyAttempts"`
	LastApplyError *string     `json:"lastApplyError"`
	EscalatedAt    *time.Time  `json:"escalatedAt"`
	ApplyingSince  *time.Time  `json:"applyingSince"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`

	ErrorLog *ErrorLogDTO `json:"errorLog,omitempty"`
}

type ApproveFixRequest struct {
	Feedback *string `json:"feedback" validate:"omitempty,max=4000"`
}

type RejectFixRequest struct {
	Feedback string `json:"feedback" validate:"required,max=4000"`
}

type ApproveFixResponse struct {
	Fix       ProposedFixDTO  `json:"fix"`
	Execution ExecutionResult `json:"execution"`
	Applied   bool            `json:"applied"`
}
