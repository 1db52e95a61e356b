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
package shared

import (
	"fmt"
	"net/url"

	"github.com/l3montree-dev/orghub/accesscontrol"
)

func GetSession(ctx Context) accesscontrol.AuthSession {
	return ctx.Get("session").(accesscontrol.AuthSession)
}

func SetSession(ctx Context, session accesscontrol.AuthSession) {
	ctx.Set("session", session)
}

func GetShortName(ctx Context) (string, error) {
	shortName := SanitizeParam(ctx.Param("shortName"))
	if shortName == "" {
		return "", fmt.Errorf("could not get short name from path")
	}
	return shortName, nil
}

// GetCourseID reads the course id from the path. Legacy course ids contain
// slashes, clients send them percent encoded.
func GetCourseID(ctx Context) (string, error) {
	courseID := SanitizeParam(ctx.Param("courseID"))
	if courseID == "" {
		return "", fmt.Errorf("could not get course id from path")
	}
	unescaped, err := url.PathUnescape(courseID)
	if err != nil {
		return "", fmt.Errorf("could not unescape course id: %w", err)
	}
	return unescaped, nil
}
