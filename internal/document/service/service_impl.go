package service

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/bwmarrin/snowflake"

	"github.com/districtclose/districtclose/internal/document/domain"
)

type service struct {
	repo domain.Repository
	node *snowflake.Node
}

func New(repo domain.Repository, node *snowflake.Node) domain.Service {
	return &service{repo: repo, node: node}
}

func (s *service) SeedForTransaction(ctx context.Context, transactionID snowflake.ID, tenanted bool) ([]domain.Document, error) {
	templates := domain.RequiredTemplates
	if tenanted {
		templates = append(append([]domain.Template{}, templates...), domain.TOPATemplates...)
	}

	docs := make([]domain.Document, len(templates))
	for i, tpl := range templates {
		docs[i] = domain.Document{
			ID:              s.node.Generate(),
			TransactionID:   transactionID,
			Name:            tpl.Name,
			Description:     tpl.Description,
			IsRequired:      tpl.IsRequired,
			Status:          domain.StatusMissing,
			VisibleToBuyer:  tpl.VisibleToBuyer,
			VisibleToSeller: tpl.VisibleToSeller,
		}
		if tpl.OfficialFormURL != "" {
			form := tpl.OfficialFormURL
			docs[i].OfficialFormURL = &form
		}
	}

	if err := s.repo.CreateBatch(ctx, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *service) ListForViewer(ctx context.Context, transactionID snowflake.ID, role string) ([]domain.Document, error) {
	all, err := s.repo.FindByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Document, 0, len(all))
	for _, d := range all {
		if d.VisibleTo(role) {
			visible = append(visible, d)
		}
	}

	// Required slots that are still missing float to the top so the
	// checklist reads as a to-do list.
	sort.SliceStable(visible, func(i, j int) bool {
		return docRank(visible[i]) < docRank(visible[j])
	})
	return visible, nil
}

func docRank(d domain.Document) int {
	switch {
	case d.IsRequired && d.Status == domain.StatusMissing:
		return 0
	case d.IsRequired:
		return 1
	default:
		return 2
	}
}

func (s *service) Link(ctx context.Context, id snowflake.ID, rawURL string, uploadedBy snowflake.ID) (*domain.Document, error) {
	rawURL = strings.TrimSpace(rawURL)
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		return nil, domain.ErrInvalidURL
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	provider := domain.InferProvider(rawURL)
	d.ExternalURL = &rawURL
	d.ExternalProvider = &provider
	d.Status = domain.StatusLinked
	d.UploadedBy = &uploadedBy

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) Unlink(ctx context.Context, id snowflake.ID) (*domain.Document, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.ExternalURL = nil
	d.ExternalProvider = nil
	d.UploadedBy = nil
	d.Status = domain.StatusMissing

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) SetStatus(ctx context.Context, id snowflake.ID, status domain.Status) (*domain.Document, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Status = status
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
