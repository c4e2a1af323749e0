package service

import (
	"context"
	"math"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/districtclose/districtclose/internal/milestone/domain"
)

type service struct {
	repo domain.Repository
	node *snowflake.Node
}

func New(repo domain.Repository, node *snowflake.Node) domain.Service {
	return &service{repo: repo, node: node}
}

func (s *service) SeedForTransaction(ctx context.Context, transactionID snowflake.ID, start time.Time, tenanted bool) ([]domain.Milestone, error) {
	var milestones []domain.Milestone
	milestones = append(milestones, s.instantiate(transactionID, domain.DefaultTemplates, start)...)
	if tenanted {
		milestones = append(milestones, s.instantiate(transactionID, domain.TOPATemplates, start)...)
	}
	if err := s.repo.CreateBatch(ctx, milestones); err != nil {
		return nil, err
	}
	return milestones, nil
}

// instantiate materializes one template set. Prerequisite references are
// resolved within the set, so IDs are generated before linking.
func (s *service) instantiate(transactionID snowflake.ID, templates []domain.Template, start time.Time) []domain.Milestone {
	milestones := make([]domain.Milestone, len(templates))
	for i, tpl := range templates {
		due := tpl.DueDate(start)
		milestones[i] = domain.Milestone{
			ID:              s.node.Generate(),
			TransactionID:   transactionID,
			Name:            tpl.Name,
			Description:     tpl.Description,
			Status:          domain.StatusNotStarted,
			DueDate:         &due,
			IsDCSpecific:    tpl.IsDCSpecific,
			VisibleToBuyer:  tpl.VisibleToBuyer,
			VisibleToSeller: tpl.VisibleToSeller,
			OrderIndex:      tpl.OrderIndex,
		}
	}
	for i, tpl := range templates {
		if tpl.DependsOn >= 0 && tpl.DependsOn < len(milestones) {
			dep := milestones[tpl.DependsOn].ID
			milestones[i].DependsOn = &dep
		}
	}
	return milestones
}

func (s *service) ListForViewer(ctx context.Context, transactionID snowflake.ID, role string) ([]domain.Milestone, error) {
	all, err := s.repo.FindByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	visible := make([]domain.Milestone, 0, len(all))
	for _, m := range all {
		if m.VisibleTo(role) {
			visible = append(visible, m)
		}
	}
	return visible, nil
}

func (s *service) UpdateStatus(ctx context.Context, id snowflake.ID, status domain.Status) (*domain.Milestone, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Status = status
	if status == domain.StatusComplete {
		now := time.Now().UTC()
		m.CompletedDate = &now
	} else {
		m.CompletedDate = nil
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) ProgressForViewer(ctx context.Context, transactionID snowflake.ID, role string) (domain.Progress, error) {
	visible, err := s.ListForViewer(ctx, transactionID, role)
	if err != nil {
		return domain.Progress{}, err
	}

	progress := domain.Progress{Total: len(visible)}
	for _, m := range visible {
		if m.Status == domain.StatusComplete {
			progress.Complete++
		}
	}
	if progress.Total > 0 {
		progress.Percent = math.Round(float64(progress.Complete) / float64(progress.Total) * 100)
	}
	return progress, nil
}
