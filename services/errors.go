// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups whose target does not exist. It is wrapped by
// InvalidOrganizationError on the single-entity paths so callers can
// distinguish "bad input" from "no such record" with errors.Is.
var ErrNotFound = errors.New("not found")

// InvalidOrganizationError reports malformed or missing organization data,
// or a reference to an organization that does not exist where existence is
// required.
type InvalidOrganizationError struct {
	// Description names the offending entity.
	Description string
	Err         error
}

func (e *InvalidOrganizationError) Error() string {
	return fmt.Sprintf("the organization you have provided is not valid: %s", e.Description)
}

func (e *InvalidOrganizationError) Unwrap() error {
	return e.Err
}

func invalidOrganization(format string, args ...any) *InvalidOrganizationError {
	return &InvalidOrganizationError{Description: fmt.Sprintf(format, args...)}
}

func organizationNotFound(format string, args ...any) *InvalidOrganizationError {
	return &InvalidOrganizationError{
		Description: fmt.Sprintf(format, args...),
		Err:         ErrNotFound,
	}
}
