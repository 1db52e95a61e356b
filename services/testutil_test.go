package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/l3montree-dev/orghub/database/models"
	"github.com/l3montree-dev/orghub/database/repositories"
	"github.com/l3montree-dev/orghub/shared"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(&models.Organization{}, &models.OrganizationCourse{})
	require.NoError(t, err)

	return database
}

func setupRepositories(t *testing.T) (shared.OrganizationRepository, shared.OrganizationCourseRepository, *gorm.DB) {
	database := setupTestDB(t)
	return repositories.NewOrganizationRepository(database), repositories.NewOrganizationCourseRepository(database), database
}

func createTestOrg(t *testing.T, repository shared.OrganizationRepository, shortName string, active bool) models.Organization {
	org := models.Organization{
		ShortName: shortName,
		Name:      shortName + " university",
		Active:    active,
	}
	require.NoError(t, repository.Create(nil, &org))
	return org
}

func createTestLink(t *testing.T, repository shared.OrganizationCourseRepository, organizationID uint, courseID string, active bool) models.OrganizationCourse {
	link := models.OrganizationCourse{
		OrganizationID: organizationID,
		CourseID:       courseID,
		Active:         active,
	}
	require.NoError(t, repository.Create(nil, &link))
	return link
}

func countRows(t *testing.T, database *gorm.DB, model any) int64 {
	var count int64
	require.NoError(t, database.Model(model).Count(&count).Error)
	return count
}
