package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrFinancialsNotFound = errors.New("financials_not_found")
	ErrWrongRole          = errors.New("wrong_role_for_financials")
)

type Repository interface {
	FindBuyerByTransaction(ctx context.Context, transactionID snowflake.ID) (*BuyerFinancials, error)
	SaveBuyer(ctx context.Context, f *BuyerFinancials) error
	FindSellerByTransaction(ctx context.Context, transactionID snowflake.ID) (*SellerFinancials, error)
	SaveSeller(ctx context.Context, f *SellerFinancials) error
}

// BuyerParams are the buyer-editable worksheet fields.
type BuyerParams struct {
	LoanType            *string
	InterestRate        *float64
	DownPaymentAmount   *float64
	DownPaymentPercent  *float64
	EarnestMoneyDeposit *float64
	TitleInsurance      *float64
	OtherClosingCosts   *float64
	IsFirstTimeBuyer    bool
}

// SellerParams are the seller-editable worksheet fields.
type SellerParams struct {
	ExistingMortgageBalance *float64
	OtherLiens              *float64
	RealEstateCommission    *float64
	HOAFeesDue              *float64
	OtherFees               *float64
}

// Service owns the per-role financial worksheets. Each worksheet is private
// to its side, and the derived tax and settlement figures are recomputed on
// every save from the transaction's sale price.
type Service interface {
	GetBuyer(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID) (*BuyerFinancials, error)
	UpsertBuyer(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID, params BuyerParams) (*BuyerFinancials, error)
	GetSeller(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID) (*SellerFinancials, error)
	UpsertSeller(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID, params SellerParams) (*SellerFinancials, error)
}
