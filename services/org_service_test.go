package services

import (
	"testing"

	"github.com/l3montree-dev/orghub/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganization(t *testing.T) {
	t.Run("should create a new active organization", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org, err := service.CreateOrganization(models.Organization{
			ShortName: "edX",
			Name:      "edX university",
		})
		require.NoError(t, err)
		assert.NotZero(t, org.ID)
		assert.True(t, org.Active)
	})

	t.Run("should fail without a name", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		_, err := service.CreateOrganization(models.Organization{ShortName: "edX"})
		var invalidErr *InvalidOrganizationError
		assert.ErrorAs(t, err, &invalidErr)
	})

	t.Run("should reject short names with spaces or slashes", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		for _, shortName := range []string{"ed X", "ed/X", "ed+X", ""} {
			_, err := service.CreateOrganization(models.Organization{
				ShortName: shortName,
				Name:      "edX university",
			})
			var invalidErr *InvalidOrganizationError
			assert.ErrorAs(t, err, &invalidErr, "short name %q should be rejected", shortName)
		}
	})

	t.Run("should be idempotent and never field-update an existing row", func(t *testing.T) {
		orgRepository, orgCourseRepository, database := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		first, err := service.CreateOrganization(models.Organization{
			ShortName:   "edX",
			Name:        "edX university",
			Description: "original description",
		})
		require.NoError(t, err)

		second, err := service.CreateOrganization(models.Organization{
			ShortName:   "edX",
			Name:        "a different name",
			Description: "a different description",
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "edX university", second.Name)
		assert.Equal(t, "original description", second.Description)
		assert.EqualValues(t, 1, countRows(t, database, &models.Organization{}))
	})

	t.Run("should reactivate an inactive organization together with its linkages", func(t *testing.T) {
		orgRepository, orgCourseRepository, database := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org := createTestOrg(t, orgRepository, "edX", false)
		link := createTestLink(t, orgCourseRepository, org.ID, "course-v1:edX+DemoX+2025", false)

		reactivated, err := service.CreateOrganization(models.Organization{
			ShortName: "edX",
			Name:      "edX university",
		})
		require.NoError(t, err)
		assert.Equal(t, org.ID, reactivated.ID)
		assert.True(t, reactivated.Active)

		restored, err := orgCourseRepository.ReadByPair(org.ID, link.CourseID)
		require.NoError(t, err)
		assert.True(t, restored.Active)
		assert.EqualValues(t, 1, countRows(t, database, &models.OrganizationCourse{}))
	})
}

func TestGetOrganization(t *testing.T) {
	t.Run("should not return inactive organizations", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org := createTestOrg(t, orgRepository, "edX", false)

		_, err := service.GetOrganization(org.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = service.GetOrganizationByShortName("edX")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should match the short name exactly", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		createTestOrg(t, orgRepository, "edX", true)

		org, err := service.GetOrganizationByShortName("edX")
		require.NoError(t, err)
		assert.Equal(t, "edX", org.ShortName)

		_, err = service.GetOrganizationByShortName("EDX")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListOrganizations(t *testing.T) {
	t.Run("should return only active organizations in creation order", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		createTestOrg(t, orgRepository, "alpha", true)
		createTestOrg(t, orgRepository, "beta", false)
		createTestOrg(t, orgRepository, "gamma", true)

		orgs, err := service.ListOrganizations()
		require.NoError(t, err)
		require.Len(t, orgs, 2)
		assert.Equal(t, "alpha", orgs[0].ShortName)
		assert.Equal(t, "gamma", orgs[1].ShortName)
	})
}

func TestRemoveOrganization(t *testing.T) {
	t.Run("should deactivate the organization and its active linkages", func(t *testing.T) {
		orgRepository, orgCourseRepository, database := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org := createTestOrg(t, orgRepository, "edX", true)
		link := createTestLink(t, orgCourseRepository, org.ID, "course-v1:edX+DemoX+2025", true)

		require.NoError(t, service.RemoveOrganization(org.ID))

		stored, err := orgRepository.Read(org.ID)
		require.NoError(t, err)
		assert.False(t, stored.Active)

		storedLink, err := orgCourseRepository.ReadByPair(org.ID, link.CourseID)
		require.NoError(t, err)
		assert.False(t, storedLink.Active)

		// rows are tombstoned, not deleted
		assert.EqualValues(t, 1, countRows(t, database, &models.Organization{}))
		assert.EqualValues(t, 1, countRows(t, database, &models.OrganizationCourse{}))
	})

	t.Run("should be a no-op for unknown organizations", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		assert.NoError(t, service.RemoveOrganization(42))
	})

	t.Run("remove and re-add should not grow the table", func(t *testing.T) {
		orgRepository, orgCourseRepository, database := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org, err := service.CreateOrganization(models.Organization{ShortName: "edX", Name: "edX university"})
		require.NoError(t, err)
		require.NoError(t, service.RemoveOrganization(org.ID))

		again, err := service.CreateOrganization(models.Organization{ShortName: "edX", Name: "edX university"})
		require.NoError(t, err)
		assert.Equal(t, org.ID, again.ID)
		assert.EqualValues(t, 1, countRows(t, database, &models.Organization{}))
	})
}

func TestUpdateOrganization(t *testing.T) {
	t.Run("should overwrite all fields including active", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org := createTestOrg(t, orgRepository, "edX", true)

		updated, err := service.UpdateOrganization(models.Organization{
			Model:       models.Model{ID: org.ID},
			ShortName:   "edX",
			Name:        "new name",
			Description: "new description",
			Active:      false,
		})
		require.NoError(t, err)
		assert.Equal(t, "new name", updated.Name)
		assert.False(t, updated.Active)
	})

	t.Run("should fail for unknown ids", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		_, err := service.UpdateOrganization(models.Organization{
			Model:     models.Model{ID: 42},
			ShortName: "edX",
			Name:      "new name",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestEnsureOrganization(t *testing.T) {
	t.Run("should create a minimal organization when autocreate is enabled", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, true)

		org, err := service.EnsureOrganization("edX")
		require.NoError(t, err)
		assert.Equal(t, "edX", org.ShortName)
		assert.Equal(t, "edX", org.Name)
		assert.True(t, org.Active)
	})

	t.Run("should fail when autocreate is disabled", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		_, err := service.EnsureOrganization("edX")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should return the existing organization untouched", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, true)

		createTestOrg(t, orgRepository, "edX", true)

		org, err := service.EnsureOrganization("edX")
		require.NoError(t, err)
		assert.Equal(t, "edX university", org.Name)
	})
}

func TestUpsertOrganization(t *testing.T) {
	t.Run("should create a new active organization", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org, created, err := service.UpsertOrganization("edX", models.Organization{Name: "edX university"})
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, org.Active)
	})

	t.Run("should field-update and force-activate an existing row without touching linkages", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgService(orgRepository, orgCourseRepository, false)

		org := createTestOrg(t, orgRepository, "edX", false)
		link := createTestLink(t, orgCourseRepository, org.ID, "course-v1:edX+DemoX+2025", false)

		updated, created, err := service.UpsertOrganization("edX", models.Organization{Name: "new name"})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, org.ID, updated.ID)
		assert.True(t, updated.Active)
		assert.Equal(t, "new name", updated.Name)

		// unlike the single-entity create path, PUT does not cascade
		storedLink, err := orgCourseRepository.ReadByPair(org.ID, link.CourseID)
		require.NoError(t, err)
		assert.False(t, storedLink.Active)
	})
}
