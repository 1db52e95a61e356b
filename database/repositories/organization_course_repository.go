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

package repositories

import (
	"github.com/l3montree-dev/orghub/database/models"
	"gorm.io/gorm"
)

type organizationCourseRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.OrganizationCourse]
}

func NewOrganizationCourseRepository(db *gorm.DB) *organizationCourseRepository {
	return &organizationCourseRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.OrganizationCourse](db),
	}
}

// ReadByPair looks a linkage up regardless of its active flag.
func (g *organizationCourseRepository) ReadByPair(organizationID uint, courseID string) (models.OrganizationCourse, error) {
	var link models.OrganizationCourse
	err := g.db.Model(models.OrganizationCourse{}).
		Where("organization_id = ? AND course_id = ?", organizationID, courseID).
		First(&link).Error
	return link, err
}

func (g *organizationCourseRepository) ReadActiveByPair(organizationID uint, courseID string) (models.OrganizationCourse, error) {
	var link models.OrganizationCourse
	err := g.db.Model(models.OrganizationCourse{}).
		Where("organization_id = ? AND course_id = ? AND active = ?", organizationID, courseID, true).
		First(&link).Error
	return link, err
}

// ListAllWithOrganization loads the full linkage table together with the
// owning organizations. The bulk reconciliation trades this single wide read
// for avoiding per-pair lookups.
func (g *organizationCourseRepository) ListAllWithOrganization() ([]models.OrganizationCourse, error) {
	var links []models.OrganizationCourse
	err := g.db.Model(models.OrganizationCourse{}).Preload("Organization").Find(&links).Error
	return links, err
}

// ListActiveByOrganization returns active linkages in linkage creation order
// so that "the first linked organization" is deterministic.
func (g *organizationCourseRepository) ListActiveByOrganization(organizationID uint) ([]models.OrganizationCourse, error) {
	var links []models.OrganizationCourse
	err := g.db.Model(models.OrganizationCourse{}).Preload("Organization").
		Where("organization_id = ? AND active = ?", organizationID, true).
		Order("id ASC").
		Find(&links).Error
	return links, err
}

func (g *organizationCourseRepository) ListActiveByCourse(courseID string) ([]models.OrganizationCourse, error) {
	var links []models.OrganizationCourse
	err := g.db.Model(models.OrganizationCourse{}).Preload("Organization").
		Where("course_id = ? AND active = ?", courseID, true).
		Order("id ASC").
		Find(&links).Error
	return links, err
}

func (g *organizationCourseRepository) ListByOrganizationAndActive(tx *gorm.DB, organizationID uint, active bool) ([]models.OrganizationCourse, error) {
	var links []models.OrganizationCourse
	err := g.GetDB(tx).Model(models.OrganizationCourse{}).
		Where("organization_id = ? AND active = ?", organizationID, active).
		Find(&links).Error
	return links, err
}

func (g *organizationCourseRepository) Update(tx *gorm.DB, link *models.OrganizationCourse) error {
	return g.GetDB(tx).Save(link).Error
}

func (g *organizationCourseRepository) SetActiveBatch(tx *gorm.DB, ids []uint, active bool) error {
	if len(ids) == 0 {
		return nil
	}
	return g.GetDB(tx).Model(models.OrganizationCourse{}).Where("id IN ?", ids).Update("active", active).Error
}
