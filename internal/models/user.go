package models

type UserRole string

const (
	UserRoleJobseeker UserRole = "jobseeker"
	UserRoleEmployer  UserRole = "employer"
)

// ValidRole reports whether r is one of the roles the board knows about.
func ValidRole(r UserRole) bool {
	return r == UserRoleJobseeker || r == UserRoleEmployer
}

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'jobseeker'" json:"role"`

	// Relations
	Jobs []Job `gorm:"foreignKey:PostedByUserID" json:"-"`
}
