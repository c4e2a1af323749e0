package service

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"

	"github.com/districtclose/districtclose/internal/dctax"
	"github.com/districtclose/districtclose/internal/financials/domain"
	txdomain "github.com/districtclose/districtclose/internal/transaction/domain"
)

type service struct {
	repo         domain.Repository
	node         *snowflake.Node
	transactions txdomain.Service
}

func New(repo domain.Repository, node *snowflake.Node, transactions txdomain.Service) domain.Service {
	return &service{repo: repo, node: node, transactions: transactions}
}

// requireRole loads the transaction and checks the caller sits on the side
// the worksheet belongs to.
func (s *service) requireRole(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID, want txdomain.Role) (*txdomain.Transaction, error) {
	tx, role, err := s.transactions.GetForViewer(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}
	if role != want {
		return nil, domain.ErrWrongRole
	}
	return tx, nil
}

func (s *service) GetBuyer(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID) (*domain.BuyerFinancials, error) {
	if _, err := s.requireRole(ctx, transactionID, userID, txdomain.RoleBuyer); err != nil {
		return nil, err
	}
	return s.repo.FindBuyerByTransaction(ctx, transactionID)
}

func (s *service) UpsertBuyer(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID, params domain.BuyerParams) (*domain.BuyerFinancials, error) {
	tx, err := s.requireRole(ctx, transactionID, userID, txdomain.RoleBuyer)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.FindBuyerByTransaction(ctx, transactionID)
	if errors.Is(err, domain.ErrFinancialsNotFound) {
		f = &domain.BuyerFinancials{ID: s.node.Generate(), TransactionID: transactionID}
	} else if err != nil {
		return nil, err
	}

	f.UserID = userID
	f.LoanType = params.LoanType
	f.InterestRate = params.InterestRate
	f.DownPaymentAmount = params.DownPaymentAmount
	f.DownPaymentPercent = params.DownPaymentPercent
	f.EarnestMoneyDeposit = params.EarnestMoneyDeposit
	f.TitleInsurance = params.TitleInsurance
	f.OtherClosingCosts = params.OtherClosingCosts
	f.IsFirstTimeBuyer = params.IsFirstTimeBuyer

	// A percent-only down payment is resolved against the sale price.
	if f.DownPaymentAmount == nil && f.DownPaymentPercent != nil {
		amount := tx.SalePrice * *f.DownPaymentPercent / 100
		f.DownPaymentAmount = &amount
	}

	calc, err := dctax.Calculate(tx.SalePrice, f.IsFirstTimeBuyer)
	if err != nil {
		return nil, err
	}
	f.RecordationTax = calc.RecordationTax
	f.TransferTax = calc.TransferTax
	f.CashToClose = dctax.BuyerCashToClose(dctax.BuyerParams{
		DownPayment:       deref(f.DownPaymentAmount),
		RecordationTax:    f.RecordationTax,
		TransferTax:       f.TransferTax,
		TitleInsurance:    deref(f.TitleInsurance),
		OtherClosingCosts: deref(f.OtherClosingCosts),
	})

	if err := s.repo.SaveBuyer(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetSeller(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID) (*domain.SellerFinancials, error) {
	if _, err := s.requireRole(ctx, transactionID, userID, txdomain.RoleSeller); err != nil {
		return nil, err
	}
	return s.repo.FindSellerByTransaction(ctx, transactionID)
}

func (s *service) UpsertSeller(ctx context.Context, transactionID snowflake.ID, userID snowflake.ID, params domain.SellerParams) (*domain.SellerFinancials, error) {
	tx, err := s.requireRole(ctx, transactionID, userID, txdomain.RoleSeller)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.FindSellerByTransaction(ctx, transactionID)
	if errors.Is(err, domain.ErrFinancialsNotFound) {
		f = &domain.SellerFinancials{ID: s.node.Generate(), TransactionID: transactionID}
	} else if err != nil {
		return nil, err
	}

	f.UserID = userID
	f.ExistingMortgageBalance = params.ExistingMortgageBalance
	f.OtherLiens = params.OtherLiens
	f.RealEstateCommission = params.RealEstateCommission
	f.HOAFeesDue = params.HOAFeesDue
	f.OtherFees = params.OtherFees

	transfer, err := dctax.Transfer(tx.SalePrice)
	if err != nil {
		return nil, err
	}
	f.TransferTax = transfer.Amount
	f.NetProceeds = dctax.SellerNetProceeds(dctax.SellerParams{
		SalePrice:       tx.SalePrice,
		MortgageBalance: deref(f.ExistingMortgageBalance),
		OtherLiens:      deref(f.OtherLiens),
		TransferTax:     f.TransferTax,
		Commission:      deref(f.RealEstateCommission),
		HOAFeesDue:      deref(f.HOAFeesDue),
		OtherFees:       deref(f.OtherFees),
	})

	if err := s.repo.SaveSeller(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
