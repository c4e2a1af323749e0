package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	financialsdomain "github.com/districtclose/districtclose/internal/financials/domain"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
)

// financialsRequest carries both worksheets' editable fields. The viewer's
// role on the transaction decides which side is written.
type financialsRequest struct {
	// Buyer side.
	LoanType            *string  `json:"loan_type"`
	InterestRate        *float64 `json:"interest_rate"`
	DownPaymentAmount   *float64 `json:"down_payment_amount"`
	DownPaymentPercent  *float64 `json:"down_payment_percent"`
	EarnestMoneyDeposit *float64 `json:"earnest_money_deposit"`
	TitleInsurance      *float64 `json:"title_insurance"`
	OtherClosingCosts   *float64 `json:"other_closing_costs"`
	IsFirstTimeBuyer    bool     `json:"is_first_time_buyer"`

	// Seller side.
	ExistingMortgageBalance *float64 `json:"existing_mortgage_balance"`
	OtherLiens              *float64 `json:"other_liens"`
	RealEstateCommission    *float64 `json:"real_estate_commission"`
	HOAFeesDue              *float64 `json:"hoa_fees_due"`
	OtherFees               *float64 `json:"other_fees"`
}

func (s *Server) GetFinancials(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	_, role, err := s.txsvc.GetForViewer(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if role == txdomain.RoleBuyer {
		f, err := s.financialssvc.GetBuyer(c.Request.Context(), id, userID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": f, "role": role})
		return
	}

	f, err := s.financialssvc.GetSeller(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": f, "role": role})
}

func (s *Server) UpsertFinancials(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req financialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	_, role, err := s.txsvc.GetForViewer(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if role == txdomain.RoleBuyer {
		f, err := s.financialssvc.UpsertBuyer(c.Request.Context(), id, userID, financialsdomain.BuyerParams{
			LoanType:            req.LoanType,
			InterestRate:        req.InterestRate,
			DownPaymentAmount:   req.DownPaymentAmount,
			DownPaymentPercent:  req.DownPaymentPercent,
			EarnestMoneyDeposit: req.EarnestMoneyDeposit,
			TitleInsurance:      req.TitleInsurance,
			OtherClosingCosts:   req.OtherClosingCosts,
			IsFirstTimeBuyer:    req.IsFirstTimeBuyer,
		})
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": f, "role": role})
		return
	}

	f, err := s.financialssvc.UpsertSeller(c.Request.Context(), id, userID, financialsdomain.SellerParams{
		ExistingMortgageBalance: req.ExistingMortgageBalance,
		OtherLiens:              req.OtherLiens,
		RealEstateCommission:    req.RealEstateCommission,
		HOAFeesDue:              req.HOAFeesDue,
		OtherFees:               req.OtherFees,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": f, "role": role})
}
