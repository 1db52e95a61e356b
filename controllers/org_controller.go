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
	"fmt"

	"github.com/l3montree-dev/orghub/dtos"
	"github.com/l3montree-dev/orghub/services"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/l3montree-dev/orghub/transformer"
	"github.com/l3montree-dev/orghub/utils"
	"github.com/labstack/echo/v4"
)

type OrgController struct {
	orgService *services.OrgService
}

func NewOrgController(orgService *services.OrgService) *OrgController {
	return &OrgController{
		orgService: orgService,
	}
}

func (controller *OrgController) List(ctx shared.Context) error {
	orgs, err := controller.orgService.ListOrganizations()
	if err != nil {
		return echo.NewHTTPError(500, "could not list organizations").WithInternal(err)
	}

	return ctx.JSON(200, utils.Map(orgs, transformer.OrgDTOFromModel))
}

func (controller *OrgController) Read(ctx shared.Context) error {
	shortName, err := shared.GetShortName(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid short name").WithInternal(err)
	}

	org, err := controller.orgService.GetOrganizationByShortName(shortName)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(200, transformer.OrgDTOFromModel(org))
}

// CreateOrUpdate performs both create and update via PUT. The active field
// may not be specified via the HTTP API, it is always assumed to be true:
// new organizations created through the API are always active, and existing
// organizations updated through the API always end up active, regardless of
// whether or not they were previously active.
func (controller *OrgController) CreateOrUpdate(ctx shared.Context) error {
	shortName, err := shared.GetShortName(ctx)
	if err != nil {
		return echo.NewHTTPError(400, "invalid short name").WithInternal(err)
	}

	var req dtos.OrgUpsertRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}
	if req.Active != nil {
		return echo.NewHTTPError(400, "value of 'active' may not be specified via the organizations HTTP API")
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	org, created, err := controller.orgService.UpsertOrganization(shortName, transformer.OrgUpsertRequestToModel(req))
	if err != nil {
		return serviceError(err)
	}

	status := 200
	if created {
		status = 201
	}
	return ctx.JSON(status, transformer.OrgDTOFromModel(org))
}

// Patch is disabled, all updates and creates should use PUT.
func (controller *OrgController) Patch(ctx shared.Context) error {
	return echo.NewHTTPError(405, "method not allowed")
}
