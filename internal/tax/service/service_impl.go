package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/tax/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("tax.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateTaxRequest) (domain.Tax, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Tax{}, domain.ErrInvalidName
	}
	if req.Rate.IsNegative() {
		return domain.Tax{}, domain.ErrInvalidRate
	}
	scope := req.AppliesTo
	if scope == "" {
		scope = domain.TaxScopeBoth
	}
	if !scope.Valid() {
		return domain.Tax{}, domain.ErrInvalidScope
	}

	now := time.Now().UTC()
	tax := domain.Tax{
		ID:        s.genID.Generate(),
		Name:      name,
		Rate:      req.Rate,
		AppliesTo: scope,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &tax); err != nil {
		return domain.Tax{}, err
	}
	return tax, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Tax, error) {
	taxes, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if taxes == nil {
		taxes = []domain.Tax{}
	}
	return taxes, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Tax, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Tax{}, err
	}

	tax, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Tax{}, err
	}
	if tax == nil {
		return domain.Tax{}, domain.ErrNotFound
	}
	return *tax, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateTaxRequest) (domain.Tax, error) {
	tax, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Tax{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Tax{}, domain.ErrInvalidName
		}
		tax.Name = name
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return domain.Tax{}, domain.ErrInvalidRate
		}
		tax.Rate = *req.Rate
	}
	if req.AppliesTo != nil {
		if !req.AppliesTo.Valid() {
			return domain.Tax{}, domain.ErrInvalidScope
		}
		tax.AppliesTo = *req.AppliesTo
	}
	tax.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, &tax); err != nil {
		return domain.Tax{}, err
	}
	return tax, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tax, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, tax.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
