package dtos

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "USER"
	MessageRoleAssistant MessageRole = "ASSISTANT"
)

type MessageType string

const (
	MessageTypeResult          MessageType = "RESULT"
	MessageTypeError           MessageType = "ERROR"
	MessageTypeApprovalRequest MessageType = "APPROVAL_REQUEST"
)

// GenericFailureMessage is the only text a user sees when the error handling itself fails.
const GenericFailureMessage = "Something went wrong. Please try again."

type MessageCreateRequest struct {
	Prompt string `json:"prompt" validate:"required,max=20000"`
}

type FragmentDTO struct {
	ID         uuid.UUID         `json:"id"`
	SandboxID  string            `json:"sandboxId"`
	SandboxURL string            `json:"sandboxUrl"`
	Title      string            `json:"title"`
	Files      map[string]string `json:"files"`
	CreatedAt  time.Time         `json:"createdAt"`
}

type MessageDTO struct {
	ID        uuid.UUID    `json:"id"`
	ProjectID uuid.UUID    `json:"projectId"`
	Role      MessageRole  `json:"role"`
	Type      MessageType  `json:"type"`
	Content   string       `json:"content"`
	Fragment  *FragmentDTO `json:"fragment,omitempty"`
	ErrorLog  *ErrorLogDTO `json:"errorLog,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// AgentResult is what a generation attempt of the agent loop produced.
type AgentResult struct {
	Title      string
	Summary    string
	Files      map[string]string
	SandboxID  string
	SandboxURL string
}

// HasOutput reports whether the attempt produced something worth persisting.
func (r AgentResult) HasOutput() bool {
	return r.Summary != "" && len(r.Files) > 0
}
