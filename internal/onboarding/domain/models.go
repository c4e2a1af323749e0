package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Step is a position in the first-transaction wizard.
type Step int

const (
	StepWelcome Step = iota
	StepRole
	StepProperty
	StepDetails
	StepComplete
)

func (s Step) Valid() bool {
	return s >= StepWelcome && s <= StepComplete
}

// Name returns the wizard step identifier used by the UI.
func (s Step) Name() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepRole:
		return "role"
	case StepProperty:
		return "property"
	case StepDetails:
		return "details"
	case StepComplete:
		return "complete"
	}
	return "unknown"
}

// State is a user's saved progress through the wizard. One row per user;
// finishing the wizard records the transaction it produced.
type State struct {
	ID                   snowflake.ID  `json:"id,string" gorm:"primaryKey"`
	UserID               snowflake.ID  `json:"user_id,string" gorm:"uniqueIndex;not null"`
	CurrentStep          Step          `json:"current_step"`
	Role                 string        `json:"role"`
	PropertyAddress      string        `json:"property_address"`
	SalePrice            float64       `json:"sale_price"`
	IsTenanted           bool          `json:"is_tenanted"`
	TargetSettlementDate *time.Time    `json:"target_settlement_date,omitempty"`
	TransactionID        *snowflake.ID `json:"transaction_id,string,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (State) TableName() string {
	return "onboarding_states"
}

// CanProceed reports whether the state satisfies the current step's
// requirements for moving forward.
func (s State) CanProceed() bool {
	switch s.CurrentStep {
	case StepRole:
		return s.Role == "buyer" || s.Role == "seller"
	case StepProperty:
		return s.PropertyAddress != ""
	case StepDetails:
		return s.SalePrice > 0
	case StepComplete:
		return false
	default:
		return true
	}
}
