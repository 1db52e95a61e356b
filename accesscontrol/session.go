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

package accesscontrol

type AuthSession interface {
	GetUserID() string
	IsStaff() bool
}

type session struct {
	userID string
	staff  bool
}

func NewSession(userID string, staff bool) AuthSession {
	return session{
		userID: userID,
		staff:  staff,
	}
}

func (s session) GetUserID() string {
	return s.userID
}

func (s session) IsStaff() bool {
	return s.staff
}

// NoSession is set by the session middleware when a request carries no
// valid credentials.
var NoSession = NewSession("", false)
