package transformer

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposedFixModelToDTO(t *testing.T) {
	errorLog := models.NewErrorLog(uuid.New(), dtos.ErrorContext{Stage: dtos.StageException, Error: "boom"}, dtos.FallbackDiagnosis())
	fix := models.NewProposedFix(errorLog.ID, dtos.FixDraft{
		Description: "install deps",
		Payload:     dtos.CommandFix{Commands: []string{"npm i"}},
		Confidence:  0.6,
	}, dtos.FixStatusPending, "sbx-1")
	fix.ErrorLog = &errorLog

	dto := ProposedFixModelToDTO(fix)

	assert.Equal(t, dtos.FixTypeCommand, dto.FixType)
	assert.Equal(t, "sbx-1", *dto.SandboxID)
	require.NotNil(t, dto.ErrorLog)
	assert.Equal(t, "boom", dto.ErrorLog.Context.Error)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"payload":{"type":"command","commands":["npm i"]}`)
}

func TestMessageModelToDTO(t *testing.T) {
	message := models.NewAssistantMessage(uuid.New(), dtos.MessageTypeError, "failed")
	assert.Nil(t, MessageModelToDTO(message).Fragment)
	assert.Nil(t, MessageModelToDTO(message).ErrorLog)

	message.Fragment = &models.Fragment{Title: "todo"}
	assert.Equal(t, "todo", MessageModelToDTO(message).Fragment.Title)
}
