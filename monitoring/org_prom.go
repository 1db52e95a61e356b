package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrganizationsCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "orghub_organizations_created_total",
	Help: "Amount of organizations created",
})

var OrganizationsReactivatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "orghub_organizations_reactivated_total",
	Help: "Amount of organizations reactivated",
})

var OrganizationCoursesCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "orghub_organization_courses_created_total",
	Help: "Amount of organization-course linkages created",
})

var OrganizationCoursesReactivatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "orghub_organization_courses_reactivated_total",
	Help: "Amount of organization-course linkages reactivated",
})
