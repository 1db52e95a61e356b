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
	"github.com/l3montree-dev/orghub/services"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/l3montree-dev/orghub/transformer"
	"github.com/l3montree-dev/orghub/utils"
	"github.com/labstack/echo/v4"
)

type OrgCourseController struct {
	orgService       *services.OrgService
	orgCourseService *services.OrgCourseService
}

func NewOrgCourseController(orgService *services.OrgService, orgCourseService *services.OrgCourseService) *OrgCourseController {
	return &OrgCourseController{
		orgService:       orgService,
		orgCourseService: orgCourseService,
	}
}

// ListByOrganization returns the active course linkages of an organization.
func (controller *OrgCourseController) ListByOrganization(ctx shared.Context) error {
	shortName, err := shared.GetShortName(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid short name").WithInternal(err)
	}

	org, err := controller.orgService.GetOrganizationByShortName(shortName)
	if err != nil {
		return serviceError(err)
	}

	links, err := controller.orgCourseService.GetOrganizationCourses(org)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(200, utils.Map(links, transformer.OrgCourseDTOFromModel))
}

// ListByCourse returns the organizations a course is linked to. Legacy
// course ids contain slashes, so the route has to capture the rest of the
// path, not a single segment.
func (controller *OrgCourseController) ListByCourse(ctx shared.Context) error {
	courseID, err := shared.GetCourseID(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid course id").WithInternal(err)
	}

	links, err := controller.orgCourseService.GetCourseOrganizations(courseID)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(200, utils.Map(links, transformer.OrgCourseDTOFromModel))
}
