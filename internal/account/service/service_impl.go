package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/account/domain"
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
		log:   p.Log.Named("account.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateAccountRequest) (domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Account{}, domain.ErrInvalidName
	}
	if !req.Type.Valid() {
		return domain.Account{}, domain.ErrInvalidType
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:        s.genID.Generate(),
		Name:      name,
		Type:      req.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Account, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Account{}, err
	}
	if account == nil {
		return domain.Account{}, domain.ErrNotFound
	}
	return *account, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateAccountRequest) (domain.Account, error) {
	account, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Account{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Account{}, domain.ErrInvalidName
		}
		account.Name = name
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return domain.Account{}, domain.ErrInvalidType
		}
		account.Type = *req.Type
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, &account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	account, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, account.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
