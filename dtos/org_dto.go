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

package dtos

import "time"

// OrgUpsertRequest is the PUT payload for creating or updating an
// organization. Active is not a settable field on the HTTP API, its
// presence is rejected with a validation error.
type OrgUpsertRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Active      *bool  `json:"active"`
}

type OrgDTO struct {
	ID          uint      `json:"id"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	ShortName   string    `json:"short_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	Active      bool      `json:"active"`
}

// OrgCourseDTO is the composite serialization of a linkage joined with its
// organization.
type OrgCourseDTO struct {
	ID          uint   `json:"id"`
	ShortName   string `json:"short_name"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CourseID    string `json:"course_id"`
}
