package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id snowflake.ID) (*User, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	UpdateLastSeen(ctx context.Context, sessionID snowflake.ID, lastSeen time.Time) error
	RevokeSession(ctx context.Context, sessionID snowflake.ID, revokedAt time.Time) error
}

type SignUpRequest struct {
	Email           string
	Password        string
	PasswordConfirm string
	FullName        string
}

type LoginRequest struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginResult carries the raw session token exactly once; only its hash is
// persisted.
type LoginResult struct {
	User      *User
	RawToken  string
	ExpiresAt time.Time
	SessionID snowflake.ID
}

type Service interface {
	// SignUp registers a new account and opens a session for it.
	SignUp(ctx context.Context, req SignUpRequest) (*LoginResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	// Authenticate resolves a raw session token to its user.
	Authenticate(ctx context.Context, rawToken string) (*User, error)
}
