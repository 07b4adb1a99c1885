package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/contact/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
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
		log:   p.Log.Named("contact.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateContactRequest) (domain.Contact, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Contact{}, domain.ErrInvalidName
	}
	if !req.Type.Valid() {
		return domain.Contact{}, domain.ErrInvalidType
	}

	now := time.Now().UTC()
	contact := domain.Contact{
		ID:           s.genID.Generate(),
		Name:         name,
		Type:         req.Type,
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		ProfileImage: strings.TrimSpace(req.ProfileImage),
		Metadata:     datatypes.JSONMap{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &contact); err != nil {
		return domain.Contact{}, err
	}

	return contact, nil
}

func (s *Service) List(ctx context.Context, req domain.ListContactRequest) ([]domain.Contact, error) {
	filter := domain.ListContactFilter{
		Name: strings.TrimSpace(req.Name),
	}
	if t := domain.ContactType(strings.TrimSpace(req.Type)); t != "" {
		if !t.Valid() {
			return nil, domain.ErrInvalidType
		}
		filter.Type = t
	}

	contacts, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Contact, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Contact{}, err
	}

	contact, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Contact{}, err
	}
	if contact == nil {
		return domain.Contact{}, domain.ErrNotFound
	}
	return *contact, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateContactRequest) (domain.Contact, error) {
	contact, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return domain.Contact{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.Contact{}, domain.ErrInvalidName
		}
		contact.Name = name
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return domain.Contact{}, domain.ErrInvalidType
		}
		contact.Type = *req.Type
	}
	if req.Email != nil {
		contact.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		contact.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		contact.Address = strings.TrimSpace(*req.Address)
	}
	if req.ProfileImage != nil {
		contact.ProfileImage = strings.TrimSpace(*req.ProfileImage)
	}
	contact.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, &contact); err != nil {
		return domain.Contact{}, err
	}
	return contact, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	contact, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, contact.ID)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
