// Copyright (C) 2025 l3montree GmbH
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

package middlewares

import (
	"errors"

	"github.com/l3montree-dev/fixflow/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ProjectAccessControl loads the project of the :projectID param and only lets its owner through.
func ProjectAccessControl(projectRepository shared.ProjectRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			userID := shared.GetSession(ctx).GetUserID()

			projectID, err := shared.GetProjectID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
			}

			project, err := projectRepository.Read(projectID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(404, "could not find project").WithInternal(err)
				}
				return echo.NewHTTPError(500, "could not load project").WithInternal(err)
			}

			if !project.IsOwnedBy(userID) {
				return echo.NewHTTPError(403, "forbidden")
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}
