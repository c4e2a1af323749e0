package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Invitation records a join link that was delivered by email. The token on
// the transaction row is the source of truth for the join flow; this table
// exists so a creator can see who they invited and resend if needed.
type Invitation struct {
	ID            snowflake.ID `json:"id,string" gorm:"primaryKey"`
	TransactionID snowflake.ID `json:"transaction_id,string" gorm:"index;not null"`
	EmailSentTo   string       `json:"email_sent_to" gorm:"not null"`
	Token         string       `json:"token" gorm:"size:12;not null"`
	IsAccepted    bool         `json:"is_accepted" gorm:"default:false"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (Invitation) TableName() string {
	return "invitations"
}
