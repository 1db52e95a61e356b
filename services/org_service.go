// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"errors"
	"log/slog"
	"regexp"

	"github.com/l3montree-dev/orghub/database/models"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/l3montree-dev/orghub/utils"
	"gorm.io/gorm"
)

var shortNameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// OrgService manages the lifecycle of single organizations: creation,
// updates, lookups and soft deletion. Records are never physically removed,
// deletion flips the active flag and cascades to the organization's course
// linkages.
type OrgService struct {
	organizationRepository       shared.OrganizationRepository
	organizationCourseRepository shared.OrganizationCourseRepository
	// autocreate controls whether EnsureOrganization creates missing
	// organizations. It is resolved once at construction instead of
	// being read from ambient configuration.
	autocreate bool
}

func NewOrgService(organizationRepository shared.OrganizationRepository, organizationCourseRepository shared.OrganizationCourseRepository, autocreate bool) *OrgService {
	return &OrgService{
		organizationRepository:       organizationRepository,
		organizationCourseRepository: organizationCourseRepository,
		autocreate:                   autocreate,
	}
}

func validateShortName(shortName string) error {
	if shortName == "" {
		return invalidOrganization("short name must not be empty")
	}
	if !shortNameRe.MatchString(shortName) {
		return invalidOrganization("short name %q may only contain letters, digits, '.', '_' and '-'", shortName)
	}
	return nil
}

// activateOrganization reactivates a soft deleted organization together with
// all of its inactive course linkages, in one transaction. Re-adding a
// deleted organization through the single-entity path restores all of its
// former course links, even ones that were individually removed earlier.
func (s *OrgService) activateOrganization(organizationID uint) error {
	return s.organizationRepository.Transaction(func(tx shared.DB) error {
		if err := s.organizationRepository.SetActiveBatch(tx, []uint{organizationID}, true); err != nil {
			return err
		}

		links, err := s.organizationCourseRepository.ListByOrganizationAndActive(tx, organizationID, false)
		if err != nil {
			return err
		}
		ids := utils.Map(links, models.OrganizationCourse.GetID)
		return s.organizationCourseRepository.SetActiveBatch(tx, ids, true)
	})
}

// deactivateOrganization soft deletes an organization and cascades the
// deactivation to all of its currently active course linkages.
func (s *OrgService) deactivateOrganization(organizationID uint) error {
	return s.organizationRepository.Transaction(func(tx shared.DB) error {
		links, err := s.organizationCourseRepository.ListByOrganizationAndActive(tx, organizationID, true)
		if err != nil {
			return err
		}
		ids := utils.Map(links, models.OrganizationCourse.GetID)
		if err := s.organizationCourseRepository.SetActiveBatch(tx, ids, false); err != nil {
			return err
		}

		return s.organizationRepository.SetActiveBatch(tx, []uint{organizationID}, false)
	})
}

// CreateOrganization stores a new organization. If an organization with the
// same short name already exists it is reactivated (including its former
// course linkages) if inactive, and returned unchanged otherwise. Existing
// rows are never field-updated by this path.
func (s *OrgService) CreateOrganization(data models.Organization) (models.Organization, error) {
	if data.Name == "" {
		return models.Organization{}, invalidOrganization("name must not be empty (short name %q)", data.ShortName)
	}
	if err := validateShortName(data.ShortName); err != nil {
		return models.Organization{}, err
	}

	existing, err := s.organizationRepository.ReadByShortName(data.ShortName)
	if err == nil {
		if !existing.Active {
			if err := s.activateOrganization(existing.ID); err != nil {
				return models.Organization{}, err
			}
			existing.Active = true
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Organization{}, err
	}

	org := models.Organization{
		ShortName:   data.ShortName,
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		Active:      true,
	}
	if err := s.organizationRepository.Create(nil, &org); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// UpdateOrganization overwrites all mutable fields of an existing
// organization, including the active flag.
func (s *OrgService) UpdateOrganization(data models.Organization) (models.Organization, error) {
	if data.ID == 0 {
		return models.Organization{}, invalidOrganization("missing id: %+v", data)
	}
	if data.Name == "" {
		return models.Organization{}, invalidOrganization("name must not be empty (id %d)", data.ID)
	}
	if err := validateShortName(data.ShortName); err != nil {
		return models.Organization{}, err
	}

	existing, err := s.organizationRepository.Read(data.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Organization{}, organizationNotFound("no organization with id %d", data.ID)
		}
		return models.Organization{}, err
	}

	existing.Name = data.Name
	existing.ShortName = data.ShortName
	existing.Description = data.Description
	existing.Logo = data.Logo
	existing.Active = data.Active

	if err := s.organizationRepository.Update(nil, &existing); err != nil {
		return models.Organization{}, err
	}
	return existing, nil
}

// GetOrganization returns the active organization with the given id.
func (s *OrgService) GetOrganization(id uint) (models.Organization, error) {
	if id == 0 {
		return models.Organization{}, invalidOrganization("missing id")
	}
	org, err := s.organizationRepository.ReadActive(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Organization{}, organizationNotFound("no active organization with id %d", id)
		}
		return models.Organization{}, err
	}
	return org, nil
}

// GetOrganizationByShortName returns the active organization with the given
// short name (exact match on the stored value).
func (s *OrgService) GetOrganizationByShortName(shortName string) (models.Organization, error) {
	if shortName == "" {
		return models.Organization{}, invalidOrganization("missing short name")
	}
	org, err := s.organizationRepository.ReadActiveByShortName(shortName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Organization{}, organizationNotFound("no active organization with short name %q", shortName)
		}
		return models.Organization{}, err
	}
	return org, nil
}

// ListOrganizations returns all active organizations.
func (s *OrgService) ListOrganizations() ([]models.Organization, error) {
	return s.organizationRepository.ListActive()
}

// RemoveOrganization soft deletes an organization and all of its active
// course linkages. Removing an already removed or unknown organization is a
// no-op.
func (s *OrgService) RemoveOrganization(id uint) error {
	if id == 0 {
		return invalidOrganization("missing id")
	}
	return s.deactivateOrganization(id)
}

// EnsureOrganization returns the active organization with the given short
// name, creating a minimal one if it does not exist and autocreation is
// enabled.
func (s *OrgService) EnsureOrganization(shortName string) (models.Organization, error) {
	org, err := s.GetOrganizationByShortName(shortName)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, ErrNotFound) || !s.autocreate {
		return models.Organization{}, err
	}

	slog.Info("automatically creating new organization", "shortName", shortName)
	return s.CreateOrganization(models.Organization{
		ShortName: shortName,
		Name:      shortName,
	})
}

// UpsertOrganization creates or fully updates the organization with the
// given short name. This is the HTTP PUT semantic: the resulting row always
// ends up active, regardless of its previous state, and no linkage cascade
// is triggered. Returns whether a new row was created.
func (s *OrgService) UpsertOrganization(shortName string, data models.Organization) (models.Organization, bool, error) {
	if data.Name == "" {
		return models.Organization{}, false, invalidOrganization("name must not be empty (short name %q)", shortName)
	}
	if err := validateShortName(shortName); err != nil {
		return models.Organization{}, false, err
	}

	existing, err := s.organizationRepository.ReadByShortName(shortName)
	if err == nil {
		existing.Name = data.Name
		existing.Description = data.Description
		existing.Logo = data.Logo
		existing.Active = true
		if err := s.organizationRepository.Update(nil, &existing); err != nil {
			return models.Organization{}, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Organization{}, false, err
	}

	org := models.Organization{
		ShortName:   shortName,
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		Active:      true,
	}
	if err := s.organizationRepository.Create(nil, &org); err != nil {
		return models.Organization{}, false, err
	}
	return org, true, nil
}
