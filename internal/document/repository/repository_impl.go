package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/document/domain"
	pkgdb "github.com/districtclose/districtclose/pkg/db"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, docs []domain.Document) error {
	if len(docs) == 0 {
		return nil
	}
	return pkgdb.Conn(ctx, r.db).Create(&docs).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Document, error) {
	var d domain.Document
	err := pkgdb.Conn(ctx, r.db).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByTransaction(ctx context.Context, transactionID snowflake.ID) ([]domain.Document, error) {
	var docs []domain.Document
	err := pkgdb.Conn(ctx, r.db).
		Where("transaction_id = ?", transactionID).
		Order("created_at ASC, id ASC").
		Find(&docs).Error
	return docs, err
}

func (r *repository) Update(ctx context.Context, d *domain.Document) error {
	return pkgdb.Conn(ctx, r.db).Save(d).Error
}
