package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/milestone/domain"
	pkgdb "github.com/districtclose/districtclose/pkg/db"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, milestones []domain.Milestone) error {
	if len(milestones) == 0 {
		return nil
	}
	return pkgdb.Conn(ctx, r.db).Create(&milestones).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Milestone, error) {
	var m domain.Milestone
	err := pkgdb.Conn(ctx, r.db).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMilestoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) FindByTransaction(ctx context.Context, transactionID snowflake.ID) ([]domain.Milestone, error) {
	var ms []domain.Milestone
	err := pkgdb.Conn(ctx, r.db).
		Where("transaction_id = ?", transactionID).
		Order("order_index ASC, due_date ASC").
		Find(&ms).Error
	return ms, err
}

func (r *repository) Update(ctx context.Context, m *domain.Milestone) error {
	return pkgdb.Conn(ctx, r.db).Save(m).Error
}
