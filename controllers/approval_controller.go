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

package controllers

import (
	"context"

	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/transformer"
	"github.com/labstack/echo/v4"
)

type ApprovalController struct {
	approvalService shared.ApprovalService
}

func NewApprovalController(approvalService shared.ApprovalService) *ApprovalController {
	return &ApprovalController{
		approvalService: approvalService,
	}
}

// @Summary List fixes waiting for a review
// @Param projectID path string true "Project ID"
// @Success 200 {array} dtos.ProposedFixDTO
// @Router /projects/{projectID}/approvals/pending [get]
func (c *ApprovalController) ListPending(ctx shared.Context) error {
	fixes, err := c.approvalService.ListPending(shared.GetProject(ctx).ID, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return serviceError(err, "could not fetch pending fixes")
	}
	return ctx.JSON(200, transformer.ProposedFixModelsToDTOs(fixes))
}

// @Summary List all fixes of a project
// @Param projectID path string true "Project ID"
// @Success 200 {array} dtos.ProposedFixDTO
// @Router /projects/{projectID}/approvals [get]
func (c *ApprovalController) ListAll(ctx shared.Context) error {
	fixes, err := c.approvalService.ListAll(shared.GetProject(ctx).ID, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return serviceError(err, "could not fetch fixes")
	}
	return ctx.JSON(200, transformer.ProposedFixModelsToDTOs(fixes))
}

// @Summary Error statistics of a project
// @Param projectID path string true "Project ID"
// @Success 200 {object} dtos.ErrorStatsDTO
// @Router /projects/{projectID}/errors/stats [get]
func (c *ApprovalController) Stats(ctx shared.Context) error {
	stats, err := c.approvalService.Stats(ctx.Request().Context(), shared.GetProject(ctx).ID, shared.GetSession(ctx).GetUserID())
	if err != nil {
		return serviceError(err, "could not compute error statistics")
	}
	return ctx.JSON(200, stats)
}

// @Summary Approve a fix
// @Description Applies the fix against its sandbox. A failed apply keeps the fix pending.
// @Param fixID path string true "Fix ID"
// @Param body body dtos.ApproveFixRequest false "Request body"
// @Success 200 {object} dtos.ApproveFixResponse
// @Router /fixes/{fixID}/approve [post]
func (c *ApprovalController) Approve(ctx shared.Context) error {
	fixID, err := shared.GetFixID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid fix id").WithInternal(err)
	}

	// the body is optional, echo skips binding an empty one
	var req dtos.ApproveFixRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	// a claimed fix has to be finalized even if the reviewer disconnects mid apply
	fix, result, err := c.approvalService.Approve(context.WithoutCancel(ctx.Request().Context()), fixID, shared.GetSession(ctx).GetUserID(), req.Feedback)
	if err != nil {
		return serviceError(err, "could not approve fix")
	}

	return ctx.JSON(200, dtos.ApproveFixResponse{
		Fix:       transformer.ProposedFixModelToDTO(fix),
		Execution: result,
		Applied:   fix.Status == dtos.FixStatusApproved && fix.SandboxID != nil && result.Success,
	})
}

// @Summary Reject a fix
// @Param fixID path string true "Fix ID"
// @Param body body dtos.RejectFixRequest true "Request body"
// @Success 200 {object} dtos.ProposedFixDTO
// @Router /fixes/{fixID}/reject [post]
func (c *ApprovalController) Reject(ctx shared.Context) error {
	fixID, err := shared.GetFixID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid fix id").WithInternal(err)
	}

	var req dtos.RejectFixRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	// empty or whitespace only feedback is rejected by the service
	fix, err := c.approvalService.Reject(ctx.Request().Context(), fixID, shared.GetSession(ctx).GetUserID(), req.Feedback)
	if err != nil {
		return serviceError(err, "could not reject fix")
	}
	return ctx.JSON(200, transformer.ProposedFixModelToDTO(fix))
}
