package models

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleManager  UserRole = "manager"
	RoleExecutor UserRole = "executor"
)

// ValidRole reports whether r is one of the recognized roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleExecutor:
		return true
	}
	return false
}

// User represents a user in the system. The role is fixed at creation.
type User struct {
	ID   uint     `json:"id" gorm:"primaryKey"`
	Name string   `json:"name" gorm:"not null"`
	Role UserRole `json:"role" gorm:"not null"`
}

// UserDraft is the payload for creating a user.
type UserDraft struct {
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
