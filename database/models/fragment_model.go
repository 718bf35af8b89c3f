package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Fragment holds the artifacts of a successful generation attempt.
type Fragment struct {
	Model
	MessageID  uuid.UUID                            `json:"messageId" gorm:"type:uuid;not null;uniqueIndex"`
	SandboxID  string                               `json:"sandboxId" gorm:"type:text"`
	SandboxURL string                               `json:"sandboxUrl" gorm:"type:text"`
	Title      string                               `json:"title" gorm:"type:text"`
	Files      datatypes.JSONType[map[string]string] `json:"files"`
}

func (m Fragment) TableName() string {
	return "fragments"
}
