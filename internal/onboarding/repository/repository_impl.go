package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/onboarding/domain"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) FindByUser(ctx context.Context, userID snowflake.ID) (*domain.State, error) {
	var s domain.State
	err := r.db.WithContext(ctx).First(&s, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Save(ctx context.Context, s *domain.State) error {
	return r.db.WithContext(ctx).Save(s).Error
}
