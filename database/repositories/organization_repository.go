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
	"strings"

	"github.com/l3montree-dev/orghub/database/models"
	"github.com/l3montree-dev/orghub/utils"
	"gorm.io/gorm"
)

type organizationRepository struct {
	db *gorm.DB
	*GormRepository[uint, models.Organization]
}

func NewOrganizationRepository(db *gorm.DB) *organizationRepository {
	return &organizationRepository{
		db:             db,
		GormRepository: newGormRepository[uint, models.Organization](db),
	}
}

func (g *organizationRepository) ReadActive(id uint) (models.Organization, error) {
	var org models.Organization
	err := g.db.Model(models.Organization{}).Where("id = ? AND active = ?", id, true).First(&org).Error
	return org, err
}

// ReadByShortName matches the stored short name exactly, regardless of the
// active flag.
func (g *organizationRepository) ReadByShortName(shortName string) (models.Organization, error) {
	var org models.Organization
	err := g.db.Model(models.Organization{}).Where("short_name = ?", shortName).First(&org).Error
	return org, err
}

func (g *organizationRepository) ReadActiveByShortName(shortName string) (models.Organization, error) {
	var org models.Organization
	err := g.db.Model(models.Organization{}).Where("short_name = ? AND active = ?", shortName, true).First(&org).Error
	return org, err
}

func (g *organizationRepository) ListActive() ([]models.Organization, error) {
	var orgs []models.Organization
	err := g.db.Model(models.Organization{}).Where("active = ?", true).Order("id ASC").Find(&orgs).Error
	return orgs, err
}

// ListByShortNamesFold matches stored short names case-insensitively against
// the given set in a single query.
func (g *organizationRepository) ListByShortNamesFold(shortNames []string) ([]models.Organization, error) {
	if len(shortNames) == 0 {
		return []models.Organization{}, nil
	}
	lowered := utils.Map(shortNames, strings.ToLower)

	var orgs []models.Organization
	err := g.db.Model(models.Organization{}).Where("LOWER(short_name) IN ?", lowered).Find(&orgs).Error
	return orgs, err
}

func (g *organizationRepository) Update(tx *gorm.DB, org *models.Organization) error {
	return g.GetDB(tx).Save(org).Error
}

func (g *organizationRepository) SetActiveBatch(tx *gorm.DB, ids []uint, active bool) error {
	if len(ids) == 0 {
		return nil
	}
	return g.GetDB(tx).Model(models.Organization{}).Where("id IN ?", ids).Update("active", active).Error
}
