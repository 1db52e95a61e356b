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

package transformer

import (
	"github.com/l3montree-dev/orghub/database/models"
	"github.com/l3montree-dev/orghub/dtos"
)

func OrgDTOFromModel(org models.Organization) dtos.OrgDTO {
	return dtos.OrgDTO{
		ID:          org.ID,
		Created:     org.CreatedAt,
		Modified:    org.UpdatedAt,
		ShortName:   org.ShortName,
		Name:        org.Name,
		Description: org.Description,
		Logo:        org.Logo,
		Active:      org.Active,
	}
}

// OrgCourseDTOFromModel serializes a linkage together with its owning
// organization. The id is the organization's id, not the linkage row id.
func OrgCourseDTOFromModel(link models.OrganizationCourse) dtos.OrgCourseDTO {
	return dtos.OrgCourseDTO{
		ID:          link.Organization.ID,
		ShortName:   link.Organization.ShortName,
		Name:        link.Organization.Name,
		Description: link.Organization.Description,
		CourseID:    link.CourseID,
	}
}

func OrgUpsertRequestToModel(req dtos.OrgUpsertRequest) models.Organization {
	return models.Organization{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
	}
}
