package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/districtclose/districtclose/pkg/db/pagination"
)

var (
	ErrTransactionNotFound = errors.New("transaction_not_found")
	ErrInvalidAddress      = errors.New("invalid_property_address")
	ErrInvalidSalePrice    = errors.New("invalid_sale_price")
	ErrInvalidRole         = errors.New("invalid_role")
	ErrNotParticipant      = errors.New("not_a_participant")
	ErrInvalidToken        = errors.New("invalid_invite_token")
	ErrAlreadyJoined       = errors.New("transaction_already_joined")
	ErrOwnTransaction      = errors.New("cannot_join_own_transaction")
	ErrTransactionClosed   = errors.New("transaction_closed")
)

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByID(ctx context.Context, id snowflake.ID) (*Transaction, error)
	FindByInviteToken(ctx context.Context, token string) (*Transaction, error)
	FindByUser(ctx context.Context, userID snowflake.ID, p pagination.Pagination) ([]Transaction, error)
	Update(ctx context.Context, tx *Transaction) error
	// ClaimPartner sets the partner columns only when the seat is still
	// open. It returns the number of rows changed, zero meaning the seat
	// was taken between read and write.
	ClaimPartner(ctx context.Context, id snowflake.ID, partnerID snowflake.ID, role Role) (int64, error)
}

// CreateParams is the creator's intake form.
type CreateParams struct {
	Role                 Role
	PropertyAddress      string
	SalePrice            float64
	IsTenanted           bool
	TargetSettlementDate *time.Time
}

// UpdateParams carries partial edits. Nil fields are left untouched.
type UpdateParams struct {
	PropertyAddress      *string
	SalePrice            *float64
	IsTenanted           *bool
	TargetSettlementDate *time.Time
}

// InvitePreview is what an invite link resolves to before joining.
type InvitePreview struct {
	Transaction *Transaction `json:"transaction"`
	JoinAsRole  Role         `json:"join_as_role"`
}

type Service interface {
	// Create validates the intake form, mints the invite token, and seeds
	// the milestone timeline and document checklist.
	Create(ctx context.Context, creatorID snowflake.ID, params CreateParams) (*Transaction, error)
	// GetForViewer loads a transaction the user participates in and
	// returns their role on it.
	GetForViewer(ctx context.Context, id snowflake.ID, userID snowflake.ID) (*Transaction, Role, error)
	// ListByUser pages through the transactions the user is a party to.
	ListByUser(ctx context.Context, userID snowflake.ID, p pagination.Pagination) ([]Transaction, *pagination.PageInfo, error)
	// Update applies partial edits by a participant. The TOPA flag never
	// reverts once the property has been marked tenanted.
	Update(ctx context.Context, id snowflake.ID, userID snowflake.ID, params UpdateParams) (*Transaction, error)
	// Close marks the transaction closed.
	Close(ctx context.Context, id snowflake.ID, userID snowflake.ID) (*Transaction, error)
	// ResolveInvite previews what joining a token would mean for userID.
	ResolveInvite(ctx context.Context, token string, userID snowflake.ID) (*InvitePreview, error)
	// Join claims the open partner seat, assigns the complementary role,
	// and activates the transaction.
	Join(ctx context.Context, token string, userID snowflake.ID) (*Transaction, error)
}
