// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package controllers

import (
	"github.com/l3montree-dev/fixflow/dtos"
	"github.com/l3montree-dev/fixflow/shared"
	"github.com/l3montree-dev/fixflow/transformer"
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectRepository shared.ProjectRepository
	projectService    shared.ProjectService
}

func NewProjectController(repository shared.ProjectRepository, projectService shared.ProjectService) *ProjectController {
	return &ProjectController{
		projectRepository: repository,
		projectService:    projectService,
	}
}

// @Summary Create project
// @Param body body dtos.ProjectCreateRequest true "Request body"
// @Success 201 {object} dtos.ProjectDTO
// @Router /projects [post]
func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Create(shared.GetSession(ctx).GetUserID(), req)
	if err != nil {
		return serviceError(err, "could not create project")
	}

	return ctx.JSON(201, transformer.ProjectModelToDTO(project))
}

// @Summary List projects of the current user
// @Success 200 {array} dtos.ProjectDTO
// @Router /projects [get]
func (c *ProjectController) List(ctx shared.Context) error {
	projects, err := c.projectRepository.ListByOwner(shared.GetSession(ctx).GetUserID())
	if err != nil {
		return echo.NewHTTPError(500, "could not fetch projects").WithInternal(err)
	}
	return ctx.JSON(200, transformer.ProjectModelsToDTOs(projects))
}

// @Summary Get project
// @Param projectID path string true "Project ID"
// @Success 200 {object} dtos.ProjectDTO
// @Router /projects/{projectID} [get]
func (c *ProjectController) Read(ctx shared.Context) error {
	return ctx.JSON(200, transformer.ProjectModelToDTO(shared.GetProject(ctx)))
}
