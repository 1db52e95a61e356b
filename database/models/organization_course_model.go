package models

// OrganizationCourse links an organization to a course run. Courses are not
// entities of this service, so the linkage stores the canonical course key
// string. The (organization, course) pair is unique across active AND
// inactive rows: removing a linkage only flips its active flag, and adding
// the same pair again reactivates the existing row.
type OrganizationCourse struct {
	Model
	OrganizationID uint         `json:"organization" gorm:"not null;uniqueIndex:uq_organization_courses_pair"`
	Organization   Organization `json:"-" gorm:"foreignKey:OrganizationID"`
	CourseID       string       `json:"course_id" gorm:"type:text;not null;uniqueIndex:uq_organization_courses_pair;index"`
	Active         bool         `json:"active" gorm:"index"`
}

func (OrganizationCourse) TableName() string {
	return "organization_courses"
}
