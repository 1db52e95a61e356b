// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"errors"

	"github.com/l3montree-dev/orghub/coursekey"
	"github.com/l3montree-dev/orghub/database/models"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/l3montree-dev/orghub/utils"
	"gorm.io/gorm"
)

// OrgCourseService manages the linkage between organizations and course
// runs. Linkages are soft deleted like organizations: a removed pair keeps
// its row and is reactivated when the same pair is added again.
type OrgCourseService struct {
	organizationRepository       shared.OrganizationRepository
	organizationCourseRepository shared.OrganizationCourseRepository
}

func NewOrgCourseService(organizationRepository shared.OrganizationRepository, organizationCourseRepository shared.OrganizationCourseRepository) *OrgCourseService {
	return &OrgCourseService{
		organizationRepository:       organizationRepository,
		organizationCourseRepository: organizationCourseRepository,
	}
}

// AddOrganizationCourse links an organization to a course. If the pair
// already exists inactive it is reactivated; if it exists active this is a
// no-op. Reactivating a linkage requires the owning organization to be
// active.
func (s *OrgCourseService) AddOrganizationCourse(org models.Organization, courseKey string) error {
	courseID, err := coursekey.Normalize(courseKey)
	if err != nil {
		return err
	}
	if org.ID == 0 {
		return invalidOrganization("missing id: %+v", org)
	}

	link, err := s.organizationCourseRepository.ReadByPair(org.ID, courseID)
	if err == nil {
		if link.Active {
			return nil
		}
		return s.activateLink(link)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.organizationCourseRepository.Create(nil, &models.OrganizationCourse{
		OrganizationID: org.ID,
		CourseID:       courseID,
		Active:         true,
	})
}

func (s *OrgCourseService) activateLink(link models.OrganizationCourse) error {
	// a linkage may only be reactivated while its organization is active
	if _, err := s.organizationRepository.ReadActive(link.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return organizationNotFound("cannot activate linkage %d: organization %d is not active", link.ID, link.OrganizationID)
		}
		return err
	}

	link.Active = true
	return s.organizationCourseRepository.Update(nil, &link)
}

// RemoveOrganizationCourse soft deletes the linkage between an organization
// and a course. Removing a linkage that does not exist is a no-op.
func (s *OrgCourseService) RemoveOrganizationCourse(org models.Organization, courseKey string) error {
	courseID, err := coursekey.Normalize(courseKey)
	if err != nil {
		return err
	}
	if org.ID == 0 {
		return invalidOrganization("missing id: %+v", org)
	}

	link, err := s.organizationCourseRepository.ReadActiveByPair(org.ID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// our work is done
			return nil
		}
		return err
	}

	link.Active = false
	return s.organizationCourseRepository.Update(nil, &link)
}

// GetOrganizationCourses returns the active linkages of an organization in
// linkage creation order.
func (s *OrgCourseService) GetOrganizationCourses(org models.Organization) ([]models.OrganizationCourse, error) {
	if org.ID == 0 {
		return nil, invalidOrganization("missing id: %+v", org)
	}
	return s.organizationCourseRepository.ListActiveByOrganization(org.ID)
}

// GetCourseOrganizations returns the organizations a course is linked to,
// in linkage creation order.
func (s *OrgCourseService) GetCourseOrganizations(courseKey string) ([]models.OrganizationCourse, error) {
	courseID, err := coursekey.Normalize(courseKey)
	if err != nil {
		return nil, err
	}
	return s.organizationCourseRepository.ListActiveByCourse(courseID)
}

// GetCourseOrganization returns the first organization linked to a course
// (by linkage creation order), or nil if the course is not linked to any
// organization.
func (s *OrgCourseService) GetCourseOrganization(courseKey string) (*models.OrganizationCourse, error) {
	links, err := s.GetCourseOrganizations(courseKey)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}
	return &links[0], nil
}

// GetCourseOrganizationID returns the id of the first organization linked
// to a course, or 0 if the course is not linked to any organization.
func (s *OrgCourseService) GetCourseOrganizationID(courseKey string) (uint, error) {
	link, err := s.GetCourseOrganization(courseKey)
	if err != nil || link == nil {
		return 0, err
	}
	return link.OrganizationID, nil
}

// RemoveCourseReferences deactivates every active linkage of a course
// across all organizations. Used for cleanup when the course itself is
// removed upstream.
func (s *OrgCourseService) RemoveCourseReferences(courseKey string) error {
	courseID, err := coursekey.Normalize(courseKey)
	if err != nil {
		return err
	}

	links, err := s.organizationCourseRepository.ListActiveByCourse(courseID)
	if err != nil {
		return err
	}
	ids := utils.Map(links, models.OrganizationCourse.GetID)
	return s.organizationCourseRepository.SetActiveBatch(nil, ids, false)
}
