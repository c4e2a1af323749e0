package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	documentdomain "github.com/districtclose/districtclose/internal/document/domain"
	"github.com/districtclose/districtclose/internal/invite/token"
	milestonedomain "github.com/districtclose/districtclose/internal/milestone/domain"
	"github.com/districtclose/districtclose/internal/observability/logger"
	"github.com/districtclose/districtclose/internal/transaction/domain"
	pkgdb "github.com/districtclose/districtclose/pkg/db"
	"github.com/districtclose/districtclose/pkg/db/pagination"
)

const defaultPageSize = 10

type service struct {
	db         *gorm.DB
	repo       domain.Repository
	node       *snowflake.Node
	milestones milestonedomain.Service
	documents  documentdomain.Service
}

func New(
	db *gorm.DB,
	repo domain.Repository,
	node *snowflake.Node,
	milestones milestonedomain.Service,
	documents documentdomain.Service,
) domain.Service {
	return &service{
		db:         db,
		repo:       repo,
		node:       node,
		milestones: milestones,
		documents:  documents,
	}
}

func (s *service) Create(ctx context.Context, creatorID snowflake.ID, params domain.CreateParams) (*domain.Transaction, error) {
	address := strings.TrimSpace(params.PropertyAddress)
	if address == "" {
		return nil, domain.ErrInvalidAddress
	}
	if err := validPrice(params.SalePrice); err != nil {
		return nil, err
	}
	if !params.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	tx := &domain.Transaction{
		ID:                   s.node.Generate(),
		CreatorID:            creatorID,
		CreatorRole:          params.Role,
		PropertyAddress:      address,
		Slug:                 slug.Make(address),
		SalePrice:            params.SalePrice,
		IsTenanted:           params.IsTenanted,
		TopaFlagged:          params.IsTenanted,
		Status:               domain.StatusPendingJoin,
		TargetSettlementDate: params.TargetSettlementDate,
	}

	// The row and its seeded timeline and checklist commit together; a
	// seeding failure never leaves a bare transaction behind. The token
	// column is unique, so a collision aborts the whole attempt and we
	// mint a fresh token.
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		tx.InviteToken = invite.GenerateToken()
		err = pkgdb.RunInTx(ctx, s.db, func(ctx context.Context) error {
			if err := s.repo.Create(ctx, tx); err != nil {
				return err
			}
			start := time.Now().UTC()
			if _, err := s.milestones.SeedForTransaction(ctx, tx.ID, start, tx.IsTenanted); err != nil {
				return err
			}
			_, err := s.documents.SeedForTransaction(ctx, tx.ID, tx.IsTenanted)
			return err
		})
		if err == nil || !pkgdb.IsDuplicateKeyErr(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("transaction created",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("creator_role", string(tx.CreatorRole)),
		zap.Bool("is_tenanted", tx.IsTenanted),
	)
	return tx, nil
}

func (s *service) GetForViewer(ctx context.Context, id snowflake.ID, userID snowflake.ID) (*domain.Transaction, domain.Role, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	role := tx.RoleOf(userID)
	if role == "" {
		return nil, "", domain.ErrNotParticipant
	}
	return tx, role, nil
}

func (s *service) ListByUser(ctx context.Context, userID snowflake.ID, p pagination.Pagination) ([]domain.Transaction, *pagination.PageInfo, error) {
	if p.PageSize <= 0 {
		p.PageSize = defaultPageSize
	}

	txs, err := s.repo.FindByUser(ctx, userID, p)
	if err != nil {
		return nil, nil, err
	}

	refs := make([]*domain.Transaction, len(txs))
	for i := range txs {
		refs[i] = &txs[i]
	}
	pageInfo := pagination.BuildCursorPageInfo(refs, p.PageSize, func(tx *domain.Transaction) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{ID: strconv.FormatInt(int64(tx.ID), 10)})
		if err != nil {
			return ""
		}
		return token
	})
	if len(txs) > p.PageSize {
		txs = txs[:p.PageSize]
	}
	return txs, pageInfo, nil
}

func (s *service) Update(ctx context.Context, id snowflake.ID, userID snowflake.ID, params domain.UpdateParams) (*domain.Transaction, error) {
	tx, _, err := s.GetForViewer(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if tx.Status == domain.StatusClosed {
		return nil, domain.ErrTransactionClosed
	}

	if params.PropertyAddress != nil {
		address := strings.TrimSpace(*params.PropertyAddress)
		if address == "" {
			return nil, domain.ErrInvalidAddress
		}
		tx.PropertyAddress = address
		tx.Slug = slug.Make(address)
	}
	if params.SalePrice != nil {
		if err := validPrice(*params.SalePrice); err != nil {
			return nil, err
		}
		tx.SalePrice = *params.SalePrice
	}
	if params.IsTenanted != nil {
		tx.IsTenanted = *params.IsTenanted
		// Once a property has been flagged for TOPA the flag stays, even
		// if the tenancy answer is later corrected.
		if *params.IsTenanted {
			tx.TopaFlagged = true
		}
	}
	if params.TargetSettlementDate != nil {
		tx.TargetSettlementDate = params.TargetSettlementDate
	}

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *service) Close(ctx context.Context, id snowflake.ID, userID snowflake.ID) (*domain.Transaction, error) {
	tx, _, err := s.GetForViewer(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	tx.Status = domain.StatusClosed
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *service) ResolveInvite(ctx context.Context, token string, userID snowflake.ID) (*domain.InvitePreview, error) {
	tx, err := s.lookupJoinable(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	return &domain.InvitePreview{
		Transaction: tx,
		JoinAsRole:  tx.CreatorRole.Complement(),
	}, nil
}

func (s *service) Join(ctx context.Context, token string, userID snowflake.ID) (*domain.Transaction, error) {
	tx, err := s.lookupJoinable(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	role := tx.CreatorRole.Complement()
	rows, err := s.repo.ClaimPartner(ctx, tx.ID, userID, role)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, domain.ErrAlreadyJoined
	}

	logger.FromContext(ctx).Info("partner joined transaction",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("partner_role", string(role)),
	)
	return s.repo.FindByID(ctx, tx.ID)
}

func (s *service) lookupJoinable(ctx context.Context, token string, userID snowflake.ID) (*domain.Transaction, error) {
	if !invite.ValidTokenFormat(token) {
		return nil, domain.ErrInvalidToken
	}
	tx, err := s.repo.FindByInviteToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if tx.PartnerID != nil {
		return nil, domain.ErrAlreadyJoined
	}
	if tx.CreatorID == userID {
		return nil, domain.ErrOwnTransaction
	}
	return tx, nil
}

func validPrice(price float64) error {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return domain.ErrInvalidSalePrice
	}
	return nil
}
