package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrStepIncomplete = errors.New("onboarding_step_incomplete")
	ErrAlreadyDone    = errors.New("onboarding_already_complete")
)

type Repository interface {
	FindByUser(ctx context.Context, userID snowflake.ID) (*State, error)
	Save(ctx context.Context, s *State) error
}

// Params are the wizard form fields. Nil fields are left untouched.
type Params struct {
	Role                 *string
	PropertyAddress      *string
	SalePrice            *float64
	IsTenanted           *bool
	TargetSettlementDate *time.Time
}

// Service walks a new user through creating their first transaction.
type Service interface {
	// Get returns the user's wizard state, creating a fresh one at the
	// welcome step on first access.
	Get(ctx context.Context, userID snowflake.ID) (*State, error)
	// Update merges form fields into the state without moving steps.
	Update(ctx context.Context, userID snowflake.ID, params Params) (*State, error)
	// Next advances one step once the current step's requirements are
	// met. Leaving the details step creates the transaction.
	Next(ctx context.Context, userID snowflake.ID) (*State, error)
	// Back moves one step toward the start.
	Back(ctx context.Context, userID snowflake.ID) (*State, error)
}
