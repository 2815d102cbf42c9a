package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

const maxNameLen = 32

func validateService(s *models.Service) error {
	for _, name := range []*string{&s.NameUA, &s.NameRU, &s.NameEN} {
		*name = strings.TrimSpace(*name)
		if *name == "" || utf8.RuneCountInString(*name) > maxNameLen {
			return httperr.ErrValidation("service names must be 1..%d characters", maxNameLen)
		}
	}
	if s.Order < 0 {
		return httperr.ErrValidation("order must not be negative")
	}
	return nil
}

type CreateService struct {
	repo  domain.Repository
	cache Cache
	audit *audit.Logger
}

func NewCreateService(repo domain.Repository, cache Cache, audit *audit.Logger) *CreateService {
	return &CreateService{repo: repo, cache: cache, audit: audit}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	actor string,
	s *models.Service,
) (*models.Service, error) {

	if err := validateService(s); err != nil {
		return nil, err
	}

	s.ID = 0
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache)

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "service_created",
		Entity:   "service",
		EntityID: audit.ID(s.ID),
		Metadata: map[string]any{"name_en": s.NameEN},
	})
	return s, nil
}

type UpdateService struct {
	repo  domain.Repository
	cache Cache
	audit *audit.Logger
}

func NewUpdateService(repo domain.Repository, cache Cache, audit *audit.Logger) *UpdateService {
	return &UpdateService{repo: repo, cache: cache, audit: audit}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	actor string,
	id uint,
	s *models.Service,
) (*models.Service, error) {

	if err := validateService(s); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateService(ctx, id, s)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, uc.cache)

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: audit.ID(id),
	})
	return updated, nil
}

type DeleteService struct {
	repo  domain.Repository
	cache Cache
	audit *audit.Logger
}

func NewDeleteService(repo domain.Repository, cache Cache, audit *audit.Logger) *DeleteService {
	return &DeleteService{repo: repo, cache: cache, audit: audit}
}

// Execute removes the service together with its profile links.
func (uc *DeleteService) Execute(ctx context.Context, actor string, id uint) error {
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, uc.cache)

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: audit.ID(id),
	})
	return nil
}
