// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"log/slog"
	"strings"

	"github.com/l3montree-dev/orghub/coursekey"
	"github.com/l3montree-dev/orghub/database/models"
	"github.com/l3montree-dev/orghub/monitoring"
	"github.com/l3montree-dev/orghub/shared"
)

// CoursePair identifies an organization-course linkage by its normalized
// (lowercased short name, canonical course id) pair.
type CoursePair struct {
	ShortName string
	CourseID  string
}

// OrganizationCourseRequest is one desired linkage in a bulk request. The
// organization is referenced by short name and assumed to already exist in
// storage; bulk linkage creation never creates organizations.
type OrganizationCourseRequest struct {
	Organization models.Organization
	CourseKey    string
}

// BulkService reconciles a batch of desired organization or linkage records
// against the current storage state with a bounded number of storage
// operations: one read plus at most two writes, independent of the batch
// size.
type BulkService struct {
	organizationRepository       shared.OrganizationRepository
	organizationCourseRepository shared.OrganizationCourseRepository
}

func NewBulkService(organizationRepository shared.OrganizationRepository, organizationCourseRepository shared.OrganizationCourseRepository) *BulkService {
	return &BulkService{
		organizationRepository:       organizationRepository,
		organizationCourseRepository: organizationCourseRepository,
	}
}

// BulkAddOrganizations ensures that all given organizations exist.
//
// Organizations that do not already exist (matched by short name,
// case-insensitively) are created; organizations that exist but are
// inactive are reactivated. Existing organizations are never field-updated:
// only their active flag may change. If several items share a short name
// the first occurrence wins and the rest are dropped.
//
// The whole batch is validated before anything is written; a validation
// failure leaves storage untouched. With dryRun the computed sets are
// returned without writing. With activate=false new rows are created
// inactive and existing inactive rows are left alone, so the reactivated
// set is always empty.
//
// Returns the short names of the created and of the reactivated
// organizations.
func (s *BulkService) BulkAddOrganizations(items []models.Organization, dryRun bool, activate bool) (map[string]struct{}, map[string]struct{}, error) {
	for _, item := range items {
		if err := validateShortName(item.ShortName); err != nil {
			return nil, nil, err
		}
	}

	// deduplicate by lowercased short name, first occurrence wins
	itemsByShortName := make(map[string]models.Organization, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		lower := strings.ToLower(item.ShortName)
		if kept, ok := itemsByShortName[lower]; ok {
			slog.Info("dropping organization from bulk batch, short name already in batch",
				"dropped", item.ShortName, "kept", kept.ShortName)
			continue
		}
		itemsByShortName[lower] = item
		order = append(order, lower)
	}

	existing, err := s.organizationRepository.ListByShortNamesFold(order)
	if err != nil {
		return nil, nil, err
	}
	existingByShortName := make(map[string]models.Organization, len(existing))
	for _, org := range existing {
		existingByShortName[strings.ToLower(org.ShortName)] = org
	}

	created := map[string]struct{}{}
	reactivated := map[string]struct{}{}
	toCreate := make([]models.Organization, 0, len(order))
	toReactivate := make([]uint, 0, len(existing))

	for _, lower := range order {
		item := itemsByShortName[lower]
		org, exists := existingByShortName[lower]
		if !exists {
			toCreate = append(toCreate, models.Organization{
				ShortName:   item.ShortName,
				Name:        item.Name,
				Description: item.Description,
				Logo:        item.Logo,
				Active:      activate,
			})
			created[item.ShortName] = struct{}{}
			continue
		}
		if activate && !org.Active {
			toReactivate = append(toReactivate, org.ID)
			reactivated[org.ShortName] = struct{}{}
		}
	}

	slog.Info("bulk organization reconciliation computed",
		"toCreate", len(toCreate), "toReactivate", len(toReactivate), "dryRun", dryRun)

	if dryRun {
		return created, reactivated, nil
	}

	err = s.organizationRepository.Transaction(func(tx shared.DB) error {
		if err := s.organizationRepository.SetActiveBatch(tx, toReactivate, true); err != nil {
			return err
		}
		return s.organizationRepository.CreateBatch(tx, toCreate)
	})
	if err != nil {
		return nil, nil, err
	}

	monitoring.OrganizationsCreatedAmount.Add(float64(len(toCreate)))
	monitoring.OrganizationsReactivatedAmount.Add(float64(len(toReactivate)))

	return created, reactivated, nil
}

// BulkAddOrganizationCourses ensures that all requested organization-course
// linkages exist.
//
// Pairs are normalized to (lowercased short name, canonical course id).
// Pairs without an existing linkage row are created, existing-but-inactive
// rows are reactivated (unless activate=false). All organizations
// referenced by pairs to be created must already exist; a missing one
// surfaces as InvalidOrganizationError before anything is written.
//
// Returns the created and the reactivated pair sets.
func (s *BulkService) BulkAddOrganizationCourses(pairs []OrganizationCourseRequest, dryRun bool, activate bool) (map[CoursePair]struct{}, map[CoursePair]struct{}, error) {
	requested := make(map[CoursePair]struct{}, len(pairs))
	for _, pair := range pairs {
		if pair.Organization.ShortName == "" {
			return nil, nil, invalidOrganization("organization is missing short name: %+v", pair.Organization)
		}
		courseID, err := coursekey.Normalize(pair.CourseKey)
		if err != nil {
			return nil, nil, err
		}
		requested[CoursePair{
			ShortName: strings.ToLower(pair.Organization.ShortName),
			CourseID:  courseID,
		}] = struct{}{}
	}

	// one wide read of the whole linkage table instead of per-pair
	// lookups. Acceptable at the scale of organizations and courses.
	rows, err := s.organizationCourseRepository.ListAllWithOrganization()
	if err != nil {
		return nil, nil, err
	}
	rowsByPair := make(map[CoursePair]models.OrganizationCourse, len(rows))
	for _, row := range rows {
		rowsByPair[CoursePair{
			ShortName: strings.ToLower(row.Organization.ShortName),
			CourseID:  row.CourseID,
		}] = row
	}

	toCreate := map[CoursePair]struct{}{}
	reactivated := map[CoursePair]struct{}{}
	toReactivate := make([]uint, 0, len(requested))
	for pair := range requested {
		row, exists := rowsByPair[pair]
		if !exists {
			toCreate[pair] = struct{}{}
			continue
		}
		if activate && !row.Active {
			toReactivate = append(toReactivate, row.ID)
			reactivated[pair] = struct{}{}
		}
	}

	slog.Info("bulk organization-course reconciliation computed",
		"toCreate", len(toCreate), "toReactivate", len(toReactivate), "dryRun", dryRun)

	if dryRun {
		return toCreate, reactivated, nil
	}

	newLinks, err := s.resolveLinks(toCreate, activate)
	if err != nil {
		return nil, nil, err
	}

	err = s.organizationCourseRepository.Transaction(func(tx shared.DB) error {
		if err := s.organizationCourseRepository.SetActiveBatch(tx, toReactivate, true); err != nil {
			return err
		}
		return s.organizationCourseRepository.CreateBatch(tx, newLinks)
	})
	if err != nil {
		return nil, nil, err
	}

	monitoring.OrganizationCoursesCreatedAmount.Add(float64(len(newLinks)))
	monitoring.OrganizationCoursesReactivatedAmount.Add(float64(len(toReactivate)))

	return toCreate, reactivated, nil
}

// resolveLinks turns the pairs to be created into linkage rows by resolving
// their organization ids with a single case-insensitive short name query.
func (s *BulkService) resolveLinks(toCreate map[CoursePair]struct{}, activate bool) ([]models.OrganizationCourse, error) {
	if len(toCreate) == 0 {
		return nil, nil
	}

	shortNames := make([]string, 0, len(toCreate))
	seen := map[string]struct{}{}
	for pair := range toCreate {
		if _, ok := seen[pair.ShortName]; ok {
			continue
		}
		seen[pair.ShortName] = struct{}{}
		shortNames = append(shortNames, pair.ShortName)
	}

	orgs, err := s.organizationRepository.ListByShortNamesFold(shortNames)
	if err != nil {
		return nil, err
	}
	idsByShortName := make(map[string]uint, len(orgs))
	for _, org := range orgs {
		idsByShortName[strings.ToLower(org.ShortName)] = org.ID
	}

	links := make([]models.OrganizationCourse, 0, len(toCreate))
	for pair := range toCreate {
		organizationID, ok := idsByShortName[pair.ShortName]
		if !ok {
			return nil, invalidOrganization("organization %q does not exist", pair.ShortName)
		}
		links = append(links, models.OrganizationCourse{
			OrganizationID: organizationID,
			CourseID:       pair.CourseID,
			Active:         activate,
		})
	}
	return links, nil
}
