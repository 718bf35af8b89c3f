package transformer

import (
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/utils"
)

func FragmentModelToDTO(f models.Fragment) dtos.FragmentDTO {
	return dtos.FragmentDTO{
		ID:         f.ID,
		SandboxID:  f.SandboxID,
		SandboxURL: f.SandboxURL,
		Title:      f.Title,
		Files:      f.Files.Data(),
		CreatedAt:  f.CreatedAt,
	}
}

func ErrorLogModelToDTO(e models.ErrorLog) dtos.ErrorLogDTO {
	payload := e.Payload.Data()
	return dtos.ErrorLogDTO{
		ID:         e.ID,
		MessageID:  e.MessageID,
		Category:   e.Category,
		Severity:   e.Severity,
		Diagnostic: e.Diagnostic,
		Context:    payload.Context,
		Diagnosis:  payload.Diagnosis,
		CreatedAt:  e.CreatedAt,
	}
}

func MessageModelToDTO(m models.Message) dtos.MessageDTO {
	dto := dtos.MessageDTO{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Role:      m.Role,
		Type:      m.Type,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.Fragment != nil {
		dto.Fragment = utils.Ptr(FragmentModelToDTO(*m.Fragment))
	}
	if m.ErrorLog != nil {
		dto.ErrorLog = utils.Ptr(ErrorLogModelToDTO(*m.ErrorLog))
	}
	return dto
}

func MessageModelsToDTOs(messages []models.Message) []dtos.MessageDTO {
	return utils.Map(messages, MessageModelToDTO)
}
