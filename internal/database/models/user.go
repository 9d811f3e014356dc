package models

// User is an authenticated identity. Flights reference it as their owner.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"size:150;not null;uniqueIndex" validate:"required,max=150"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	IsStaff      bool   `json:"is_staff" gorm:"not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

func (u User) String() string {
	return u.Username
}
