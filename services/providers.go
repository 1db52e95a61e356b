// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"github.com/l3montree-dev/orghub/config"
	"github.com/l3montree-dev/orghub/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(func(orgRepository shared.OrganizationRepository, orgCourseRepository shared.OrganizationCourseRepository, cfg *config.Config) *OrgService {
		return NewOrgService(orgRepository, orgCourseRepository, cfg.Organizations.Autocreate)
	}),
	fx.Provide(NewOrgCourseService),
	fx.Provide(NewBulkService),
)
