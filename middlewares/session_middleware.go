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

package middlewares

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/l3montree-dev/orghub/accesscontrol"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/labstack/echo/v4"
)

// SessionMiddleware authenticates requests via a JWT bearer token. The
// token subject identifies the user, the "staff" claim marks platform
// staff. Requests without a valid token are rejected.
func SessionMiddleware(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return echo.NewHTTPError(401, "missing bearer token")
			}

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return echo.NewHTTPError(401, "invalid bearer token").WithInternal(err)
			}

			userID, err := token.Claims.GetSubject()
			if err != nil || userID == "" {
				return echo.NewHTTPError(401, "token is missing a subject").WithInternal(err)
			}

			staff := false
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				staff, _ = claims["staff"].(bool)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(userID, staff))
			return next(ctx)
		}
	}
}

// StaffRequired rejects requests whose session does not belong to a staff
// user.
func StaffRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !shared.GetSession(ctx).IsStaff() {
			return echo.NewHTTPError(403, "forbidden")
		}
		return next(ctx)
	}
}
