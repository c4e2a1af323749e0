package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	onboardingdomain "github.com/districtclose/districtclose/internal/onboarding/domain"
)

type updateOnboardingRequest struct {
	Role                 *string  `json:"role"`
	PropertyAddress      *string  `json:"property_address"`
	SalePrice            *float64 `json:"sale_price"`
	IsTenanted           *bool    `json:"is_tenanted"`
	TargetSettlementDate *string  `json:"target_settlement_date"`
}

func (s *Server) GetOnboarding(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	state, err := s.onboardingsvc.Get(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": state})
}

func (s *Server) UpdateOnboarding(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req updateOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	params := onboardingdomain.Params{
		Role:            req.Role,
		PropertyAddress: req.PropertyAddress,
		SalePrice:       req.SalePrice,
		IsTenanted:      req.IsTenanted,
	}
	if req.TargetSettlementDate != nil {
		settlement, err := parseOptionalDate(*req.TargetSettlementDate)
		if err != nil {
			AbortWithError(c, newValidationError("target_settlement_date", "invalid_target_settlement_date", "invalid target_settlement_date"))
			return
		}
		params.TargetSettlementDate = settlement
	}

	state, err := s.onboardingsvc.Update(c.Request.Context(), userID, params)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": state})
}

func (s *Server) AdvanceOnboarding(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	state, err := s.onboardingsvc.Next(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": state})
}

func (s *Server) RewindOnboarding(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	state, err := s.onboardingsvc.Back(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": state})
}
