package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/districtclose/districtclose/internal/dctax"
)

type calculateTaxesRequest struct {
	SalePrice      float64 `json:"sale_price"`
	FirstTimeBuyer bool    `json:"first_time_buyer"`
}

func (s *Server) CalculateTaxes(c *gin.Context) {
	var req calculateTaxesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("sale_price", "invalid_sale_price", "invalid sale_price"))
		return
	}

	calc, err := dctax.Calculate(req.SalePrice, req.FirstTimeBuyer)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": calc,
		"formatted": gin.H{
			"recordation_tax":          dctax.FormatCurrency(calc.RecordationTax),
			"transfer_tax":             dctax.FormatCurrency(calc.TransferTax),
			"recordation_tax_rate":     dctax.FormatRate(calc.RecordationTaxRate),
			"transfer_tax_rate":        dctax.FormatRate(calc.TransferTaxRate),
			"first_time_buyer_savings": dctax.FormatCurrency(calc.FirstTimeBuyerSavings),
		},
	})
}
