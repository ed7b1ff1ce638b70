package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"` // Unique index on Username
	Email        string `gorm:"uniqueIndex;not null"` // Unique index on Email
	Password     string `gorm:"not null"`
	Role         string `gorm:"default:'user'"`
	LastLoginAt  time.Time
	LastLoginIP  string
	TokenVersion int `gorm:"default:1"`
}
