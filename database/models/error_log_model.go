package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/dtos"
	"gorm.io/datatypes"
)

// ErrorLog is the append-only record of one failed generation attempt.
// It is created once and never updated. It disappears only together with its message.
type ErrorLog struct {
	Model
	MessageID  uuid.UUID                             `json:"messageId" gorm:"type:uuid;not null;uniqueIndex"`
	Category   dtos.ErrorCategory                    `json:"category" gorm:"type:text;not null"`
	Severity   dtos.ErrorSeverity                    `json:"severity" gorm:"type:text;not null"`
	Diagnostic string                                `json:"diagnostic" gorm:"type:text;not null"`
	Payload    datatypes.JSONType[dtos.ErrorLogPayload] `json:"payload"`

	ProposedFix *ProposedFix `json:"proposedFix,omitempty" gorm:"foreignKey:ErrorLogID;constraint:OnDelete:CASCADE;"`
}

func (m ErrorLog) TableName() string {
	return "error_logs"
}

// NewErrorLog builds the record for a diagnosis. Category and severity fall back to
// the fallback classification so that every failure is classified.
func NewErrorLog(messageID uuid.UUID, errorContext dtos.ErrorContext, diagnosis dtos.Diagnosis) ErrorLog {
	if !diagnosis.Category.IsValid() || !diagnosis.Severity.IsValid() {
		diagnosis = dtos.FallbackDiagnosis()
	}
	return ErrorLog{
		MessageID:  messageID,
		Category:   diagnosis.Category,
		Severity:   diagnosis.Severity,
		Diagnostic: diagnosis.Diagnostic,
		Payload: datatypes.NewJSONType(dtos.ErrorLogPayload{
			Context:   errorContext,
			Diagnosis: diagnosis,
		}),
	}
}
