package shared

import (
	"github.com/l3montree-dev/orghub/database/models"
)

// OrganizationRepository is the storage boundary for organization records.
// Every write accepts an optional transaction handle (pass nil to use the
// default connection), mirroring the gorm repository base.
type OrganizationRepository interface {
	Transaction(fn func(tx DB) error) error
	Read(id uint) (models.Organization, error)
	ReadActive(id uint) (models.Organization, error)
	ReadByShortName(shortName string) (models.Organization, error)
	ReadActiveByShortName(shortName string) (models.Organization, error)
	ListActive() ([]models.Organization, error)
	// ListByShortNamesFold matches stored short names case-insensitively
	// against the given set in a single query.
	ListByShortNamesFold(shortNames []string) ([]models.Organization, error)
	Create(tx DB, org *models.Organization) error
	Update(tx DB, org *models.Organization) error
	CreateBatch(tx DB, orgs []models.Organization) error
	SetActiveBatch(tx DB, ids []uint, active bool) error
}

// OrganizationCourseRepository is the storage boundary for
// organization-course linkage records.
type OrganizationCourseRepository interface {
	Transaction(fn func(tx DB) error) error
	// ReadByPair looks a linkage up regardless of its active flag.
	ReadByPair(organizationID uint, courseID string) (models.OrganizationCourse, error)
	ReadActiveByPair(organizationID uint, courseID string) (models.OrganizationCourse, error)
	// ListAllWithOrganization loads every linkage row (active or not)
	// together with its owning organization.
	ListAllWithOrganization() ([]models.OrganizationCourse, error)
	ListActiveByOrganization(organizationID uint) ([]models.OrganizationCourse, error)
	ListActiveByCourse(courseID string) ([]models.OrganizationCourse, error)
	ListByOrganizationAndActive(tx DB, organizationID uint, active bool) ([]models.OrganizationCourse, error)
	Create(tx DB, link *models.OrganizationCourse) error
	Update(tx DB, link *models.OrganizationCourse) error
	CreateBatch(tx DB, links []models.OrganizationCourse) error
	SetActiveBatch(tx DB, ids []uint, active bool) error
}
