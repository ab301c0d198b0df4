package models

import (
	"fmt"
	"time"
)

// Role is the closed set of roles a user can hold. It is resolved from the
// user_types lookup table, which remains the persistent source of truth.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleHost          Role = "host"
	RoleAdministrator Role = "administrator"
	// RoleUnknown is returned when the user has no type assigned or the
	// assigned type is not one of the known roles.
	RoleUnknown Role = ""
)

// UserType represents a user role record (customer, host, administrator)
type UserType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// TableName specifies the table name for the UserType model
func (UserType) TableName() string {
	return "user_types"
}

// User represents an account in the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Surname      string    `gorm:"not null" json:"surname"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	TypeID       *uint     `gorm:"index" json:"type_id,omitempty"`
	Type         *UserType `gorm:"foreignKey:TypeID;constraint:OnDelete:SET NULL" json:"type,omitempty"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	IsStaff      bool      `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser  bool      `gorm:"not null;default:false" json:"is_superuser"`
	JoinedAt     time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the display name for the user
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.Name, u.Surname)
}

// Role resolves the user's role from the preloaded type record
func (u *User) Role() Role {
	if u.Type == nil {
		return RoleUnknown
	}
	switch u.Type.Name {
	case string(RoleCustomer):
		return RoleCustomer
	case string(RoleHost):
		return RoleHost
	case string(RoleAdministrator):
		return RoleAdministrator
	default:
		return RoleUnknown
	}
}

// IsCustomer reports whether the user holds the customer role
func (u *User) IsCustomer() bool {
	return u.Role() == RoleCustomer
}

// IsHost reports whether the user holds the host role
func (u *User) IsHost() bool {
	return u.Role() == RoleHost
}

// IsAdministrator reports whether the user holds the administrator role
func (u *User) IsAdministrator() bool {
	return u.Role() == RoleAdministrator
}
