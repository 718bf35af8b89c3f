package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/dtos"
)

// Message is a single conversation entry of a project.
type Message struct {
	Model
	ProjectID uuid.UUID        `json:"projectId" gorm:"type:uuid;not null;index"`
	Role      dtos.MessageRole `json:"role" gorm:"type:text;not null"`
	Type      dtos.MessageType `json:"type" gorm:"type:text;not null"`
	Content   string           `json:"content" gorm:"type:text;not null"`

	Fragment *Fragment `json:"fragment,omitempty" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
	ErrorLog *ErrorLog `json:"errorLog,omitempty" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
}

func (m Message) TableName() string {
	return "messages"
}

func NewUserMessage(projectID uuid.UUID, prompt string) Message {
	return Message{
		ProjectID: projectID,
		Role:      dtos.MessageRoleUser,
		Type:      dtos.MessageTypeResult,
		Content:   prompt,
	}
}

func NewAssistantMessage(projectID uuid.UUID, messageType dtos.MessageType, content string) Message {
	return Message{
		ProjectID: projectID,
		Role:      dtos.MessageRoleAssistant,
		Type:      messageType,
		Content:   content,
	}
}
