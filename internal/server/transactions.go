package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
	"github.com/districtclose/districtclose/pkg/db/pagination"
)

type createTransactionRequest struct {
	Role                 string  `json:"role"`
	PropertyAddress      string  `json:"property_address"`
	SalePrice            float64 `json:"sale_price"`
	IsTenanted           bool    `json:"is_tenanted"`
	TargetSettlementDate string  `json:"target_settlement_date"`
}

type updateTransactionRequest struct {
	PropertyAddress      *string  `json:"property_address"`
	SalePrice            *float64 `json:"sale_price"`
	IsTenanted           *bool    `json:"is_tenanted"`
	TargetSettlementDate *string  `json:"target_settlement_date"`
}

func (s *Server) CreateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	settlement, err := parseOptionalDate(req.TargetSettlementDate)
	if err != nil {
		AbortWithError(c, newValidationError("target_settlement_date", "invalid_target_settlement_date", "invalid target_settlement_date"))
		return
	}

	tx, err := s.txsvc.Create(c.Request.Context(), userID, txdomain.CreateParams{
		Role:                 txdomain.Role(strings.TrimSpace(req.Role)),
		PropertyAddress:      req.PropertyAddress,
		SalePrice:            req.SalePrice,
		IsTenanted:           req.IsTenanted,
		TargetSettlementDate: settlement,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": tx})
}

func (s *Server) ListTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	txs, pageInfo, err := s.txsvc.ListByUser(c.Request.Context(), userID, query.Pagination)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": txs, "page_info": pageInfo})
}

func (s *Server) GetTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tx, role, err := s.txsvc.GetForViewer(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tx, "viewer_role": role})
}

func (s *Server) UpdateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	params := txdomain.UpdateParams{
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

	tx, err := s.txsvc.Update(c.Request.Context(), id, userID, params)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tx})
}

func (s *Server) CloseTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	tx, err := s.txsvc.Close(c.Request.Context(), id, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tx})
}
