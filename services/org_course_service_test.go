package services

import (
	"testing"

	"github.com/l3montree-dev/orghub/coursekey"
	"github.com/l3montree-dev/orghub/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrganizationCourse(t *testing.T) {
	t.Run("should create a new active linkage", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", true)

		require.NoError(t, service.AddOrganizationCourse(org, "course-v1:edX+DemoX+2025"))

		link, err := orgCourseRepository.ReadByPair(org.ID, "course-v1:edX+DemoX+2025")
		require.NoError(t, err)
		assert.True(t, link.Active)
	})

	t.Run("should canonicalize legacy course keys", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", true)

		require.NoError(t, service.AddOrganizationCourse(org, "edX/DemoX/2025"))

		link, err := orgCourseRepository.ReadByPair(org.ID, "edX/DemoX/2025")
		require.NoError(t, err)
		assert.True(t, link.Active)
	})

	t.Run("should reject invalid course keys", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", true)

		err := service.AddOrganizationCourse(org, "not a course key")
		var invalidKeyErr *coursekey.InvalidCourseKeyError
		assert.ErrorAs(t, err, &invalidKeyErr)
	})

	t.Run("should be idempotent and reactivate a removed linkage", func(t *testing.T) {
		orgRepository, orgCourseRepository, database := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", true)
		createTestLink(t, orgCourseRepository, org.ID, "course-v1:edX+DemoX+2025", false)

		require.NoError(t, service.AddOrganizationCourse(org, "course-v1:edX+DemoX+2025"))
		require.NoError(t, service.AddOrganizationCourse(org, "course-v1:edX+DemoX+2025"))

		link, err := orgCourseRepository.ReadByPair(org.ID, "course-v1:edX+DemoX+2025")
		require.NoError(t, err)
		assert.True(t, link.Active)
		assert.EqualValues(t, 1, countRows(t, database, &models.OrganizationCourse{}))
	})

	t.Run("should refuse to reactivate a linkage of an inactive organization", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", false)
		createTestLink(t, orgCourseRepository, org.ID, "course-v1:edX+DemoX+2025", false)

		err := service.AddOrganizationCourse(org, "course-v1:edX+DemoX+2025")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRemoveOrganizationCourse(t *testing.T) {
	t.Run("should tombstone the linkage", func(t *testing.T) {
		orgRepository, orgCourseRepository, database := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", true)
		createTestLink(t, orgCourseRepository, org.ID, "course-v1:edX+DemoX+2025", true)

		require.NoError(t, service.RemoveOrganizationCourse(org, "course-v1:edX+DemoX+2025"))

		link, err := orgCourseRepository.ReadByPair(org.ID, "course-v1:edX+DemoX+2025")
		require.NoError(t, err)
		assert.False(t, link.Active)
		assert.EqualValues(t, 1, countRows(t, database, &models.OrganizationCourse{}))
	})

	t.Run("should be a no-op for unknown pairs", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", true)
		assert.NoError(t, service.RemoveOrganizationCourse(org, "course-v1:edX+DemoX+2025"))
	})
}

func TestGetCourseOrganizations(t *testing.T) {
	t.Run("should return linked organizations in linkage creation order", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		first := createTestOrg(t, orgRepository, "alpha", true)
		second := createTestOrg(t, orgRepository, "beta", true)
		createTestLink(t, orgCourseRepository, first.ID, "course-v1:alpha+X+1", true)
		createTestLink(t, orgCourseRepository, second.ID, "course-v1:alpha+X+1", true)

		links, err := service.GetCourseOrganizations("course-v1:alpha+X+1")
		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "alpha", links[0].Organization.ShortName)
		assert.Equal(t, "beta", links[1].Organization.ShortName)

		link, err := service.GetCourseOrganization("course-v1:alpha+X+1")
		require.NoError(t, err)
		require.NotNil(t, link)
		assert.Equal(t, first.ID, link.OrganizationID)

		id, err := service.GetCourseOrganizationID("course-v1:alpha+X+1")
		require.NoError(t, err)
		assert.Equal(t, first.ID, id)
	})

	t.Run("should return nothing for unlinked courses", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		link, err := service.GetCourseOrganization("course-v1:alpha+X+1")
		require.NoError(t, err)
		assert.Nil(t, link)

		id, err := service.GetCourseOrganizationID("course-v1:alpha+X+1")
		require.NoError(t, err)
		assert.Zero(t, id)
	})

	t.Run("should skip inactive linkages", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		org := createTestOrg(t, orgRepository, "edX", true)
		createTestLink(t, orgCourseRepository, org.ID, "course-v1:edX+DemoX+2025", false)

		links, err := service.GetCourseOrganizations("course-v1:edX+DemoX+2025")
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestRemoveCourseReferences(t *testing.T) {
	t.Run("should deactivate the course's linkages across all organizations", func(t *testing.T) {
		orgRepository, orgCourseRepository, _ := setupRepositories(t)
		service := NewOrgCourseService(orgRepository, orgCourseRepository)

		first := createTestOrg(t, orgRepository, "alpha", true)
		second := createTestOrg(t, orgRepository, "beta", true)
		createTestLink(t, orgCourseRepository, first.ID, "course-v1:alpha+X+1", true)
		createTestLink(t, orgCourseRepository, second.ID, "course-v1:alpha+X+1", true)
		other := createTestLink(t, orgCourseRepository, first.ID, "course-v1:alpha+Y+1", true)

		require.NoError(t, service.RemoveCourseReferences("course-v1:alpha+X+1"))

		links, err := service.GetCourseOrganizations("course-v1:alpha+X+1")
		require.NoError(t, err)
		assert.Empty(t, links)

		// unrelated courses stay linked
		kept, err := orgCourseRepository.ReadByPair(first.ID, other.CourseID)
		require.NoError(t, err)
		assert.True(t, kept.Active)
	})
}
