// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/dtos"
	"gorm.io/datatypes"
)

type ProposedFix struct {
	Model
	ErrorLogID  uuid.UUID                           `json:"errorLogId" gorm:"type:uuid;not null;uniqueIndex"`
	ErrorLog    *ErrorLog                           `json:"errorLog,omitempty" gorm:"foreignKey:ErrorLogID"`
	Description string                              `json:"description" gorm:"type:text;not null"`
	FixType     dtos.FixType                        `json:"fixType" gorm:"type:text;not null"`
	Payload     datatypes.JSONType[dtos.FixEnvelope] `json:"payload"`
	Reasoning   string                              `json:"reasoning" gorm:"type:text"`
	Confidence  float64                             `json:"confidence" gorm:"not null"`
	Status      dtos.FixStatus                      `json:"status" gorm:"type:text;not null;index"`
	// sandbox session the failed attempt ran in. Approved fixes are applied against it.
	SandboxID *string `json:"sandboxId" gorm:"type:text"`

	ReviewedBy *string    `json:"reviewedBy" gorm:"type:text"`
	ReviewedAt *time.Time `json:"reviewedAt"`
	Feedback   *string    `json:"feedback" gorm:"type:text"`

	// incremented by every conditional update; guards the status transition
	Version        int        `json:"version" gorm:"not null;default:0"`
	ApplyAttempts  int        `json:"applyAttempts" gorm:"not null;default:0"`
	LastApplyError *string    `json:"lastApplyError" gorm:"type:text"`
	EscalatedAt    *time.Time `json:"escalatedAt"`
	// set while an approved fix is being applied. Other reviews are refused until it is cleared or expired.
	ApplyingSince *time.Time `json:"applyingSince"`
}

func (m ProposedFix) TableName() string {
	return "proposed_fixes"
}

func (m ProposedFix) GetPayload() dtos.FixPayload {
	return m.Payload.Data().Payload
}

func (m ProposedFix) GetSandboxID() string {
	if m.SandboxID == nil {
		return ""
	}
	return *m.SandboxID
}

// IsBeingApplied reports whether another review currently holds the fix.
func (m ProposedFix) IsBeingApplied(now time.Time, lease time.Duration) bool {
	return m.ApplyingSince != nil && now.Sub(*m.ApplyingSince) < lease
}

func NewProposedFix(errorLogID uuid.UUID, draft dtos.FixDraft, status dtos.FixStatus, sandboxID string) ProposedFix {
	fix := ProposedFix{
		ErrorLogID:  errorLogID,
		Description: draft.Description,
		FixType:     draft.Payload.Type(),
		Payload:     datatypes.NewJSONType(dtos.FixEnvelope{Payload: draft.Payload}),
		Reasoning:   draft.Reasoning,
		Confidence:  draft.Confidence,
		Status:      status,
	}
	if sandboxID != "" {
		fix.SandboxID = &sandboxID
	}
	return fix
}
