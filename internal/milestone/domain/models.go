package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Status is the lifecycle state of a milestone.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusAtRisk     Status = "at_risk"
	StatusComplete   Status = "complete"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusAtRisk, StatusComplete:
		return true
	}
	return false
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusComplete:
		return "Complete"
	case StatusInProgress:
		return "In Progress"
	case StatusAtRisk:
		return "At Risk"
	default:
		return "Not Started"
	}
}

// Color returns the UI color key for a status.
func (s Status) Color() string {
	switch s {
	case StatusComplete:
		return "green"
	case StatusInProgress:
		return "blue"
	case StatusAtRisk:
		return "red"
	default:
		return "gray"
	}
}

// Milestone is a deadline-bearing step in a transaction timeline.
type Milestone struct {
	ID              snowflake.ID  `json:"id,string" gorm:"primaryKey"`
	TransactionID   snowflake.ID  `json:"transaction_id,string" gorm:"index;not null"`
	Name            string        `json:"name" gorm:"not null"`
	Description     string        `json:"description"`
	Status          Status        `json:"status" gorm:"default:not_started"`
	DueDate         *time.Time    `json:"due_date,omitempty"`
	CompletedDate   *time.Time    `json:"completed_date,omitempty"`
	DependsOn       *snowflake.ID `json:"depends_on,string,omitempty"`
	IsDCSpecific    bool          `json:"is_dc_specific"`
	VisibleToBuyer  bool          `json:"visible_to_buyer" gorm:"default:true"`
	VisibleToSeller bool          `json:"visible_to_seller" gorm:"default:true"`
	OrderIndex      int           `json:"order_index"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (Milestone) TableName() string {
	return "milestones"
}

// VisibleTo reports whether the milestone is shown to the given viewer role.
func (m Milestone) VisibleTo(role string) bool {
	if role == "buyer" {
		return m.VisibleToBuyer
	}
	return m.VisibleToSeller
}
