package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role is a party's side of the transaction.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Complement returns the opposite side.
func (r Role) Complement() Role {
	if r == RoleBuyer {
		return RoleSeller
	}
	return RoleBuyer
}

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusPendingJoin Status = "pending_join"
	StatusActive      Status = "active"
	StatusClosed      Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingJoin, StatusActive, StatusClosed:
		return true
	}
	return false
}

// Transaction is a two-party FSBO sale. The creator picks a side at
// creation; the partner claims the other side through the invite token.
type Transaction struct {
	ID                   snowflake.ID  `json:"id,string" gorm:"primaryKey"`
	CreatorID            snowflake.ID  `json:"creator_id,string" gorm:"index;not null"`
	PartnerID            *snowflake.ID `json:"partner_id,string,omitempty" gorm:"index"`
	CreatorRole          Role          `json:"creator_role" gorm:"not null"`
	PartnerRole          *Role         `json:"partner_role,omitempty"`
	PropertyAddress      string        `json:"property_address" gorm:"not null"`
	Slug                 string        `json:"slug" gorm:"index"`
	SalePrice            float64       `json:"sale_price"`
	IsTenanted           bool          `json:"is_tenanted"`
	TopaFlagged          bool          `json:"topa_flagged"`
	InviteToken          string        `json:"invite_token" gorm:"size:12;uniqueIndex"`
	Status               Status        `json:"status" gorm:"default:pending_join"`
	TargetSettlementDate *time.Time    `json:"target_settlement_date,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// RoleOf returns the side userID holds, or "" when they are not a party.
func (t Transaction) RoleOf(userID snowflake.ID) Role {
	if t.CreatorID == userID {
		return t.CreatorRole
	}
	if t.PartnerID != nil && *t.PartnerID == userID && t.PartnerRole != nil {
		return *t.PartnerRole
	}
	return ""
}

// IsParticipant reports whether userID is the creator or the joined partner.
func (t Transaction) IsParticipant(userID snowflake.ID) bool {
	return t.RoleOf(userID) != ""
}
