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

package middlewares

import (
	"strings"

	"github.com/l3montree-dev/fixflow/shared"
	"github.com/labstack/echo/v4"
)

// UserIDHeader is set by the authenticating proxy in front of the api.
const UserIDHeader = "X-User-ID"

func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID := strings.TrimSpace(ctx.Request().Header.Get(UserIDHeader))
			if userID == "" {
				return echo.NewHTTPError(401, "no session")
			}
			shared.SetSession(ctx, shared.NewSession(userID))
			return next(ctx)
		}
	}
}
