// Package domain contains core types for the auth service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// User is a registered account. Either side of a transaction signs up the
// same way; roles are assigned per transaction, not per account.
type User struct {
	ID           snowflake.ID `json:"id,string" gorm:"primaryKey"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string       `json:"-" gorm:"type:text;not null"`
	FullName     string       `json:"full_name"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Session is a persisted login session. Only the hash of the opaque token
// is stored.
type Session struct {
	ID               snowflake.ID `gorm:"primaryKey"`
	UserID           snowflake.ID `gorm:"index;not null"`
	SessionTokenHash string       `gorm:"type:text;uniqueIndex;not null"`
	UserAgent        string       `gorm:"type:text"`
	IPAddress        string       `gorm:"type:text"`
	ExpiresAt        time.Time    `gorm:"index;not null"`
	RevokedAt        *time.Time
	CreatedAt        time.Time
	LastSeenAt       time.Time
}

func (Session) TableName() string { return "sessions" }
