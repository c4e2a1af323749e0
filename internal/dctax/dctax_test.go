package dctax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordationRatesMatchTransferRates(t *testing.T) {
	for _, price := range []float64{1, 100000, 399999.99, 400000} {
		recordation, err := Recordation(price, false)
		require.NoError(t, err)
		transfer, err := Transfer(price)
		require.NoError(t, err)
		assert.Equal(t, 0.011, recordation.Rate)
		assert.Equal(t, 0.011, transfer.Rate)
	}

	for _, price := range []float64{400000.01, 500000, 1250000} {
		recordation, err := Recordation(price, false)
		require.NoError(t, err)
		transfer, err := Transfer(price)
		require.NoError(t, err)
		assert.Equal(t, 0.0145, recordation.Rate)
		assert.Equal(t, 0.0145, transfer.Rate)
	}
}

func TestFirstTimeBuyerDiscount(t *testing.T) {
	for _, price := range []float64{100000, 400000, 500000} {
		recordation, err := Recordation(price, true)
		require.NoError(t, err)
		assert.Equal(t, 0.00725, recordation.Rate)
		assert.Equal(t, price*0.00725, recordation.Amount)

		calc, err := Calculate(price, true)
		require.NoError(t, err)
		regular, err := Recordation(price, false)
		require.NoError(t, err)
		assert.Equal(t, regular.Amount-recordation.Amount, calc.FirstTimeBuyerSavings)
		assert.Positive(t, calc.FirstTimeBuyerSavings)
	}
}

func TestFirstTimeBuyerOverThresholdFallsBack(t *testing.T) {
	recordation, err := Recordation(600000, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0145, recordation.Rate)
	assert.InDelta(t, 8700, recordation.Amount, 1e-9)

	calc, err := Calculate(600000, true)
	require.NoError(t, err)
	assert.Zero(t, calc.FirstTimeBuyerSavings)
}

func TestSavingsZeroWhenNotFirstTime(t *testing.T) {
	calc, err := Calculate(450000, false)
	require.NoError(t, err)
	assert.Zero(t, calc.FirstTimeBuyerSavings)
}

func TestExampleScenarios(t *testing.T) {
	// Sale price 350,000, not first-time: both taxes 3,850 at 1.1%.
	calc, err := Calculate(350000, false)
	require.NoError(t, err)
	assert.InDelta(t, 3850, calc.RecordationTax, 1e-9)
	assert.InDelta(t, 3850, calc.TransferTax, 1e-9)

	// Sale price 450,000, first-time: 0.725% = 3,262.50, savings vs 1.45%.
	calc, err = Calculate(450000, true)
	require.NoError(t, err)
	assert.InDelta(t, 3262.50, calc.RecordationTax, 1e-9)
	assert.InDelta(t, 3262.50, calc.FirstTimeBuyerSavings, 1e-9)
}

func TestBuyerCashToCloseLinearity(t *testing.T) {
	base := BuyerParams{
		DownPayment:    90000,
		RecordationTax: 3850,
		TransferTax:    3850,
		TitleInsurance: 1200,
	}
	baseline := BuyerCashToClose(base)
	assert.InDelta(t, 90000+3850+1925+1200, baseline, 1e-9)

	doubled := base
	doubled.TitleInsurance *= 2
	assert.InDelta(t, baseline+base.TitleInsurance, BuyerCashToClose(doubled), 1e-9)

	withOther := base
	withOther.OtherClosingCosts = 500
	assert.InDelta(t, baseline+500, BuyerCashToClose(withOther), 1e-9)
}

func TestSellerNetProceeds(t *testing.T) {
	proceeds := SellerNetProceeds(SellerParams{
		SalePrice:       350000,
		MortgageBalance: 200000,
		TransferTax:     3850,
		Commission:      0,
		HOAFeesDue:      600,
	})
	assert.InDelta(t, 350000-200000-1925-600, proceeds, 1e-9)

	// Doubling a deduction moves the result by exactly the delta.
	withLiens := SellerNetProceeds(SellerParams{
		SalePrice:       350000,
		MortgageBalance: 200000,
		OtherLiens:      5000,
		TransferTax:     3850,
		HOAFeesDue:      600,
	})
	assert.InDelta(t, proceeds-5000, withLiens, 1e-9)
}

func TestInvalidPrices(t *testing.T) {
	for _, price := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Recordation(price, false)
		assert.ErrorIs(t, err, ErrInvalidPrice)
		_, err = Transfer(price)
		assert.ErrorIs(t, err, ErrInvalidPrice)
		_, err = Calculate(price, true)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$3,850", FormatCurrency(3850))
	assert.Equal(t, "$3,263", FormatCurrency(3262.50))
	assert.Equal(t, "1.10%", FormatRate(0.011))
	assert.Equal(t, "0.73%", FormatRate(0.00725))
}
