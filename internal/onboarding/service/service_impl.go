package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"

	"github.com/districtclose/districtclose/internal/onboarding/domain"
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

func (s *service) Get(ctx context.Context, userID snowflake.ID) (*domain.State, error) {
	state, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}

	state = &domain.State{
		ID:          s.node.Generate(),
		UserID:      userID,
		CurrentStep: domain.StepWelcome,
	}
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) Update(ctx context.Context, userID snowflake.ID, params domain.Params) (*domain.State, error) {
	state, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.CurrentStep == domain.StepComplete {
		return nil, domain.ErrAlreadyDone
	}

	if params.Role != nil {
		state.Role = strings.ToLower(strings.TrimSpace(*params.Role))
	}
	if params.PropertyAddress != nil {
		state.PropertyAddress = strings.TrimSpace(*params.PropertyAddress)
	}
	if params.SalePrice != nil {
		state.SalePrice = *params.SalePrice
	}
	if params.IsTenanted != nil {
		state.IsTenanted = *params.IsTenanted
	}
	if params.TargetSettlementDate != nil {
		state.TargetSettlementDate = params.TargetSettlementDate
	}

	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) Next(ctx context.Context, userID snowflake.ID) (*domain.State, error) {
	state, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.CurrentStep == domain.StepComplete {
		return nil, domain.ErrAlreadyDone
	}
	if !state.CanProceed() {
		return nil, domain.ErrStepIncomplete
	}

	// Leaving the details step is the point of no return: the transaction
	// is created and the wizard lands on complete.
	if state.CurrentStep == domain.StepDetails {
		tx, err := s.transactions.Create(ctx, userID, txdomain.CreateParams{
			Role:                 txdomain.Role(state.Role),
			PropertyAddress:      state.PropertyAddress,
			SalePrice:            state.SalePrice,
			IsTenanted:           state.IsTenanted,
			TargetSettlementDate: state.TargetSettlementDate,
		})
		if err != nil {
			return nil, err
		}
		state.TransactionID = &tx.ID
	}

	state.CurrentStep++
	if err := s.repo.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *service) Back(ctx context.Context, userID snowflake.ID) (*domain.State, error) {
	state, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.CurrentStep == domain.StepComplete {
		return nil, domain.ErrAlreadyDone
	}
	if state.CurrentStep > domain.StepWelcome {
		state.CurrentStep--
		if err := s.repo.Save(ctx, state); err != nil {
			return nil, err
		}
	}
	return state, nil
}
