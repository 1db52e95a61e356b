// Copyright (C) 2025 Tim Bastin, l3montree GmbH
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
	"errors"

	"github.com/l3montree-dev/orghub/coursekey"
	"github.com/l3montree-dev/orghub/services"
	"github.com/labstack/echo/v4"
)

// serviceError translates domain errors into HTTP errors. Lookups whose
// target does not exist become 404, invalid input becomes 400, everything
// else stays a 500.
func serviceError(err error) error {
	var invalidOrgErr *services.InvalidOrganizationError
	var invalidKeyErr *coursekey.InvalidCourseKeyError

	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(404, "not found").WithInternal(err)
	case errors.As(err, &invalidOrgErr):
		return echo.NewHTTPError(400, invalidOrgErr.Error()).WithInternal(err)
	case errors.As(err, &invalidKeyErr):
		return echo.NewHTTPError(400, invalidKeyErr.Error()).WithInternal(err)
	default:
		return echo.NewHTTPError(500, "unexpected error").WithInternal(err)
	}
}
