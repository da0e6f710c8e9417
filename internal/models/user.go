package models

import (
	"gorm.io/gorm"
)

// User represents a registered user in the system.
type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `gorm:"not null" json:"firstName"`
	LastName     string `gorm:"not null" json:"lastName"`
}
