package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrMilestoneNotFound = errors.New("milestone_not_found")
	ErrInvalidStatus     = errors.New("invalid_milestone_status")
)

type Repository interface {
	CreateBatch(ctx context.Context, milestones []Milestone) error
	FindByID(ctx context.Context, id snowflake.ID) (*Milestone, error)
	FindByTransaction(ctx context.Context, transactionID snowflake.ID) ([]Milestone, error)
	Update(ctx context.Context, m *Milestone) error
}

// Progress summarizes how far along a transaction timeline is.
type Progress struct {
	Complete int     `json:"complete"`
	Total    int     `json:"total"`
	Percent  float64 `json:"percent"`
}

type Service interface {
	// SeedForTransaction instantiates the default timeline, plus the TOPA
	// steps when the property is tenanted. Due dates are offset from start.
	SeedForTransaction(ctx context.Context, transactionID snowflake.ID, start time.Time, tenanted bool) ([]Milestone, error)
	// ListForViewer returns the milestones visible to the given role,
	// ordered by position in the timeline.
	ListForViewer(ctx context.Context, transactionID snowflake.ID, role string) ([]Milestone, error)
	// UpdateStatus transitions a milestone. Moving to complete stamps the
	// completion date; moving away from complete clears it.
	UpdateStatus(ctx context.Context, id snowflake.ID, status Status) (*Milestone, error)
	// ProgressForViewer computes completion over the milestones the role
	// can see.
	ProgressForViewer(ctx context.Context, transactionID snowflake.ID, role string) (Progress, error)
}
