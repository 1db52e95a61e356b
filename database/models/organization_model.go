package models

// Organization represents an entity which publishes one or more courses on
// the learning platform. Organizations are soft deleted: the active flag is
// flipped instead of removing the row, so an organization stays addressable
// by id and short name for reactivation.
type Organization struct {
	Model
	// ShortName is the external natural key. It keeps the casing it was
	// first created with; uniqueness is enforced case-insensitively by
	// the storage layer.
	ShortName   string `json:"short_name" gorm:"type:text;not null;index"`
	Name        string `json:"name" gorm:"type:text;not null"`
	Description string `json:"description" gorm:"type:text"`
	// Logo is an opaque reference to the logo asset. It is carried along
	// but never touched by the reconciliation logic.
	Logo   string `json:"logo" gorm:"type:text"`
	Active bool   `json:"active" gorm:"index"`
}

func (Organization) TableName() string {
	return "organizations"
}
