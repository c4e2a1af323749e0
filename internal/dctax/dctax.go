// Package dctax computes District of Columbia transfer and recordation
// taxes and the derived closing figures for a residential sale.
//
// Recordation tax (paid by the buyer):
//   - 1.1% for sale prices up to $400,000
//   - 1.45% above $400,000
//   - first-time DC homebuyers pay a reduced 0.725% on homes up to $500,000
//
// Transfer tax (conventionally split between the parties):
//   - 1.1% up to $400,000, 1.45% above
//
// Amounts are exact; rounding to whole dollars happens only at display time.
package dctax

import (
	"errors"
	"math"
)

const (
	thresholdPrice = 400000
	lowRate        = 0.011
	highRate       = 0.0145

	firstTimeBuyerRate      = 0.00725
	firstTimeBuyerThreshold = 500000
)

// ErrInvalidPrice rejects negative or non-finite sale prices.
var ErrInvalidPrice = errors.New("invalid_sale_price")

// Tax is a computed tax amount with the rate that produced it.
type Tax struct {
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate"`
}

// Calculation aggregates the full DC tax picture for a sale.
type Calculation struct {
	RecordationTax        float64 `json:"recordation_tax"`
	TransferTax           float64 `json:"transfer_tax"`
	RecordationTaxRate    float64 `json:"recordation_tax_rate"`
	TransferTaxRate       float64 `json:"transfer_tax_rate"`
	IsFirstTimeBuyer      bool    `json:"is_first_time_buyer"`
	FirstTimeBuyerSavings float64 `json:"first_time_buyer_savings"`
}

// Recordation computes the buyer-side recordation tax.
func Recordation(price float64, firstTimeBuyer bool) (Tax, error) {
	if err := validatePrice(price); err != nil {
		return Tax{}, err
	}

	if firstTimeBuyer && price <= firstTimeBuyerThreshold {
		return Tax{Amount: price * firstTimeBuyerRate, Rate: firstTimeBuyerRate}, nil
	}

	rate := lowRate
	if price > thresholdPrice {
		rate = highRate
	}
	return Tax{Amount: price * rate, Rate: rate}, nil
}

// Transfer computes the transfer tax. No first-time-buyer discount applies.
func Transfer(price float64) (Tax, error) {
	if err := validatePrice(price); err != nil {
		return Tax{}, err
	}

	rate := lowRate
	if price > thresholdPrice {
		rate = highRate
	}
	return Tax{Amount: price * rate, Rate: rate}, nil
}

// Calculate returns the combined recordation/transfer picture, including the
// first-time-buyer savings against the regular recordation rate.
func Calculate(price float64, firstTimeBuyer bool) (Calculation, error) {
	recordation, err := Recordation(price, firstTimeBuyer)
	if err != nil {
		return Calculation{}, err
	}
	transfer, err := Transfer(price)
	if err != nil {
		return Calculation{}, err
	}

	savings := 0.0
	if firstTimeBuyer {
		regular, err := Recordation(price, false)
		if err != nil {
			return Calculation{}, err
		}
		savings = regular.Amount - recordation.Amount
	}

	return Calculation{
		RecordationTax:        recordation.Amount,
		TransferTax:           transfer.Amount,
		RecordationTaxRate:    recordation.Rate,
		TransferTaxRate:       transfer.Rate,
		IsFirstTimeBuyer:      firstTimeBuyer,
		FirstTimeBuyerSavings: savings,
	}, nil
}

// BuyerParams are the buyer-side closing cost inputs. Optional costs
// default to zero.
type BuyerParams struct {
	DownPayment       float64
	RecordationTax    float64
	TransferTax       float64
	TitleInsurance    float64
	OtherClosingCosts float64
}

// BuyerCashToClose sums the buyer's funds due at settlement. The transfer
// tax is modeled as split evenly between the parties.
func BuyerCashToClose(p BuyerParams) float64 {
	return p.DownPayment +
		p.RecordationTax +
		p.TransferTax*0.5 +
		p.TitleInsurance +
		p.OtherClosingCosts
}

// SellerParams are the seller-side settlement inputs. Optional deductions
// default to zero.
type SellerParams struct {
	SalePrice       float64
	MortgageBalance float64
	OtherLiens      float64
	TransferTax     float64
	Commission      float64
	HOAFeesDue      float64
	OtherFees       float64
}

// SellerNetProceeds computes what the seller walks away with.
func SellerNetProceeds(p SellerParams) float64 {
	return p.SalePrice -
		p.MortgageBalance -
		p.OtherLiens -
		p.TransferTax*0.5 -
		p.Commission -
		p.HOAFeesDue -
		p.OtherFees
}

func validatePrice(price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	return nil
}
