package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/financials/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) FindBuyerByTransaction(ctx context.Context, transactionID snowflake.ID) (*domain.BuyerFinancials, error) {
	var f domain.BuyerFinancials
	err := r.db.WithContext(ctx).First(&f, "transaction_id = ?", transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFinancialsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) SaveBuyer(ctx context.Context, f *domain.BuyerFinancials) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *repository) FindSellerByTransaction(ctx context.Context, transactionID snowflake.ID) (*domain.SellerFinancials, error) {
	var f domain.SellerFinancials
	err := r.db.WithContext(ctx).First(&f, "transaction_id = ?", transactionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFinancialsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) SaveSeller(ctx context.Context, f *domain.SellerFinancials) error {
	return r.db.WithContext(ctx).Save(f).Error
}
