package controllers

import (
	"context"

	"github.com/l3montree-dev/fixflow/database/models"
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/transformer"
	"github.com/labstack/echo/v4"
)

type MessageController struct {
	messageRepository shared.MessageRepository
	generationService shared.GenerationService
	// runs the generation attempt after the response was sent
	background func(fn func())
}

func NewMessageController(messageRepository shared.MessageRepository, generationService shared.GenerationService) *MessageController {
	return &MessageController{
		messageRepository: messageRepository,
		generationService: generationService,
		background: func(fn func()) {
			go fn()
		},
	}
}

// @Summary List the conversation of a project
// @Param projectID path string true "Project ID"
// @Success 200 {array} dtos.MessageDTO
// @Router /projects/{projectID}/messages [get]
func (c *MessageController) List(ctx shared.Context) error {
	messages, err := c.messageRepository.ListByProject(shared.GetProject(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch messages").WithInternal(err)
	}
	return ctx.JSON(200, transformer.MessageModelsToDTOs(messages))
}

// @Summary Send a prompt
// @Description Stores the prompt and starts a generation attempt. The outcome is appended to the conversation.
// @Param projectID path string true "Project ID"
// @Param body body dtos.MessageCreateRequest true "Request body"
// @Success 202 {object} dtos.MessageDTO
// @Router /projects/{projectID}/messages [post]
func (c *MessageController) Create(ctx shared.Context) error {
	var req dtos.MessageCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project := shared.GetProject(ctx)
	message := models.NewUserMessage(project.ID, req.Prompt)
	if err := c.messageRepository.Create(nil, &message); err != nil {
		return echo.NewHTTPError(500, "could not store message").WithInternal(err)
	}

	// the attempt outlives the request
	attemptCtx := context.WithoutCancel(ctx.Request().Context())
	c.background(func() {
		c.generationService.RunAttempt(attemptCtx, project, req.Prompt)
	})

	return ctx.JSON(202, transformer.MessageModelToDTO(message))
}
