package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/districtclose/districtclose/internal/transaction/domain"
	pkgdb "github.com/districtclose/districtclose/pkg/db"
	"github.com/districtclose/districtclose/pkg/db/pagination"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tx *domain.Transaction) error {
	return pkgdb.Conn(ctx, r.db).Create(tx).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := pkgdb.Conn(ctx, r.db).First(&tx, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *repository) FindByInviteToken(ctx context.Context, token string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := pkgdb.Conn(ctx, r.db).First(&tx, "invite_token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// FindByUser returns up to PageSize+1 rows newest first. The extra row lets
// the caller detect another page.
func (r *repository) FindByUser(ctx context.Context, userID snowflake.ID, p pagination.Pagination) ([]domain.Transaction, error) {
	q := pkgdb.Conn(ctx, r.db).
		Where("creator_id = ? OR partner_id = ?", userID, userID).
		Order("id DESC").
		Limit(p.PageSize + 1)

	if p.PageToken != "" {
		cursor, err := pagination.DecodeCursor(p.PageToken)
		if err != nil {
			return nil, err
		}
		lastID, err := strconv.ParseInt(cursor.ID, 10, 64)
		if err != nil {
			return nil, err
		}
		q = q.Where("id < ?", lastID)
	}

	var txs []domain.Transaction
	if err := q.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *repository) Update(ctx context.Context, tx *domain.Transaction) error {
	return pkgdb.Conn(ctx, r.db).Save(tx).Error
}

func (r *repository) ClaimPartner(ctx context.Context, id snowflake.ID, partnerID snowflake.ID, role domain.Role) (int64, error) {
	res := pkgdb.Conn(ctx, r.db).
		Model(&domain.Transaction{}).
		Where("id = ? AND partner_id IS NULL", id).
		Updates(map[string]interface{}{
			"partner_id":   partnerID,
			"partner_role": role,
			"status":       domain.StatusActive,
		})
	return res.RowsAffected, res.Error
}
