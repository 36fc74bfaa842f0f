package models

import "gorm.io/gorm"

// Roles assignable to a user account.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents an account in the store.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	Role       string `json:"role" gorm:"type:varchar(16);default:USER" validate:"omitempty,oneof=USER ADMIN"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// UserUpdate carries the fields of a partial account update. Nil fields are
// left unchanged. Email and ID are immutable after registration.
type UserUpdate struct {
	Role *string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// Identity is the authenticated caller of the current request, resolved once
// from a verified token and passed explicitly into every operation.
type Identity struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
