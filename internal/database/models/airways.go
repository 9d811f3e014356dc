package models

// Airways represents a carrier. Name is unique by convention only.
type Airways struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null;index" validate:"required,max=255"`
	YearFounded int    `json:"year_founded" gorm:"not null"`
	CoverageEU  bool   `json:"coverage_eu" gorm:"column:coverage_eu;not null"`

	// Relationships
	Affiliations []AirwaysPilot `json:"affiliations,omitempty" gorm:"foreignKey:AirwaysID"`
}

// TableName returns the table name for Airways
func (Airways) TableName() string {
	return "airways"
}

func (a Airways) String() string {
	return a.Name
}
