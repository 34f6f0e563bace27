package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin roles, ordered by privilege.
const (
	RoleSuperAdmin     = "super-admin"
	RoleAdmin          = "admin"
	RoleContentManager = "content-manager"
)

var roleRank = map[string]int{
	RoleContentManager: 1,
	RoleAdmin:          2,
	RoleSuperAdmin:     3,
}

// IsValidRole reports whether s names a known admin role.
func IsValidRole(s string) bool {
	_, ok := roleRank[s]
	return ok
}

// Admin represents a back-office account. Passwords are stored as bcrypt
// hashes and never serialized.
type Admin struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`
	Username     string     `gorm:"not null;size:100;uniqueIndex" json:"username"`
	Email        string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"not null;size:255" json:"-"`
	Role         string     `gorm:"not null;size:32;default:'content-manager';index" json:"role"`
	IsActive     *bool      `gorm:"default:true;index" json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName returns the table name for Admin model
func (Admin) TableName() string {
	return "admins"
}

// HasRoleAtLeast reports whether the admin's role grants at least the
// privilege of the given role.
func (a *Admin) HasRoleAtLeast(role string) bool {
	return roleRank[a.Role] >= roleRank[role]
}

// AdminFilter represents filter criteria for admin queries
type AdminFilter struct {
	ID            *uint      `json:"id,omitempty"`
	UUID          *uuid.UUID `json:"uuid,omitempty"`
	Username      *string    `json:"username,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Role          *string    `json:"role,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}
