package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/invite/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inv *domain.Invitation) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindByTransaction(ctx context.Context, transactionID snowflake.ID) ([]domain.Invitation, error) {
	var invs []domain.Invitation
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("created_at DESC").
		Find(&invs).Error
	return invs, err
}

func (r *repository) MarkAcceptedByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Invitation{}).
		Where("token = ?", token).
		Update("is_accepted", true).Error
}
