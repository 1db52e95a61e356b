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

package router

import (
	"github.com/l3montree-dev/orghub/controllers"
	"github.com/l3montree-dev/orghub/middlewares"
	"github.com/labstack/echo/v4"
)

type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	apiV0Router APIV0Router,
	orgController *controllers.OrgController,
	orgCourseController *controllers.OrgCourseController,
) OrgRouter {
	/**
	Organization router
	*/
	orgRouter := apiV0Router.Group.Group("/organizations")
	orgRouter.GET("/", orgController.List)

	/**
	Organization scoped router
	All routes below this line are scoped to a specific organization.
	*/
	organizationRouter := orgRouter.Group("/:shortName")
	organizationRouter.GET("/", orgController.Read)
	organizationRouter.PUT("/", orgController.CreateOrUpdate, middlewares.StaffRequired)
	organizationRouter.PATCH("/", orgController.Patch)
	organizationRouter.GET("/courses/", orgCourseController.ListByOrganization)

	/**
	Course scoped router
	Legacy course ids contain slashes, clients percent encode them.
	*/
	courseRouter := apiV0Router.Group.Group("/courses")
	courseRouter.GET("/:courseID/organizations/", orgCourseController.ListByCourse)

	return OrgRouter{Group: organizationRouter}
}
