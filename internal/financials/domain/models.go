package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// BuyerFinancials is the buyer's private worksheet for a transaction. The
// tax and cash-to-close columns are computed, never client-supplied.
type BuyerFinancials struct {
	ID                  snowflake.ID `json:"id,string" gorm:"primaryKey"`
	TransactionID       snowflake.ID `json:"transaction_id,string" gorm:"uniqueIndex;not null"`
	UserID              snowflake.ID `json:"user_id,string" gorm:"index;not null"`
	LoanType            *string      `json:"loan_type,omitempty"`
	InterestRate        *float64     `json:"interest_rate,omitempty"`
	DownPaymentAmount   *float64     `json:"down_payment_amount,omitempty"`
	DownPaymentPercent  *float64     `json:"down_payment_percent,omitempty"`
	EarnestMoneyDeposit *float64     `json:"earnest_money_deposit,omitempty"`
	RecordationTax      float64      `json:"recordation_tax"`
	TransferTax         float64      `json:"transfer_tax"`
	TitleInsurance      *float64     `json:"title_insurance,omitempty"`
	OtherClosingCosts   *float64     `json:"other_closing_costs,omitempty"`
	IsFirstTimeBuyer    bool         `json:"is_first_time_buyer"`
	CashToClose         float64      `json:"cash_to_close"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

func (BuyerFinancials) TableName() string {
	return "buyer_financials"
}

// SellerFinancials is the seller's private worksheet for a transaction.
type SellerFinancials struct {
	ID                      snowflake.ID `json:"id,string" gorm:"primaryKey"`
	TransactionID           snowflake.ID `json:"transaction_id,string" gorm:"uniqueIndex;not null"`
	UserID                  snowflake.ID `json:"user_id,string" gorm:"index;not null"`
	ExistingMortgageBalance *float64     `json:"existing_mortgage_balance,omitempty"`
	OtherLiens              *float64     `json:"other_liens,omitempty"`
	TransferTax             float64      `json:"transfer_tax"`
	RealEstateCommission    *float64     `json:"real_estate_commission,omitempty"`
	HOAFeesDue              *float64     `json:"hoa_fees_due,omitempty"`
	OtherFees               *float64     `json:"other_fees,omitempty"`
	NetProceeds             float64      `json:"net_proceeds"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

func (SellerFinancials) TableName() string {
	return "seller_financials"
}
