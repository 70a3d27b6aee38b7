package models

import "time"

// User represents an account. Password accounts carry PasswordHash, accounts
// created through an external identity provider carry ExternalID; linked
// accounts carry both.
type User struct {
	Base
	Name         string     `gorm:"not null;default:''" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash *string    `json:"-"`
	Provider     string     `json:"provider,omitempty"`
	ExternalID   *string    `gorm:"uniqueIndex" json:"-"`
	Image        string     `json:"image,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// TableName overrides the default table name.
func (User) TableName() string { return "users" }

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
