package transformer

import (
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/utils"
)

func ProposedFixModelToDTO(f models.ProposedFix) dtos.ProposedFixDTO {
	dto := dtos.ProposedFixDTO{
		ID:             f.ID,
		ErrorLogID:     f.ErrorLogID,
		Description:    f.Description,
		FixType:        f.FixType,
		Payload:        f.Payload.Data(),
		Reasoning:      f.Reasoning,
		Confidence:     f.Confidence,
		Status:         f.Status,
		SandboxID:      f.SandboxID,
		ReviewedBy:     f.ReviewedBy,
		ReviewedAt:     f.ReviewedAt,
		Feedback:       f.Feedback,
		ApplyAttempts:  f.ApplyAttempts,
		LastApplyError: f.LastApplyError,
		EscalatedAt:    f.EscalatedAt,
		ApplyingSince:  f.ApplyingSince,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
	if f.ErrorLog != nil {
		dto.ErrorLog = utils.Ptr(ErrorLogModelToDTO(*f.ErrorLog))
	}
	return dto
}

func ProposedFixModelsToDTOs(fixes []models.ProposedFix) []dtos.ProposedFixDTO {
	return utils.Map(fixes, ProposedFixModelToDTO)
}
