package profile

import (
	"context"
	"time"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

type CreateProfile struct {
	repo  domain.Repository
	audit *audit.Logger
	today func() time.Time
}

func NewCreateProfile(repo domain.Repository, audit *audit.Logger, tz string) *CreateProfile {
	return &CreateProfile{repo: repo, audit: audit, today: todayIn(tz)}
}

func (uc *CreateProfile) Execute(
	ctx context.Context,
	actor string,
	p *models.Profile,
) (*models.Profile, error) {

	if err := validateProfile(p, uc.today()); err != nil {
		return nil, err
	}

	p.ID = 0
	if err := uc.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "profile_created",
		Entity:   "profile",
		EntityID: audit.ID(p.ID),
		Metadata: map[string]any{"name": p.Name},
	})

	return p, nil
}

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Logger
	today func() time.Time
}

func NewUpdateProfile(repo domain.Repository, audit *audit.Logger, tz string) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: audit, today: todayIn(tz)}
}

// Execute replaces the profile's scalar fields; photos, prices and
// services are managed through their own operations.
func (uc *UpdateProfile) Execute(
	ctx context.Context,
	actor string,
	id uint,
	p *models.Profile,
) (*models.Profile, error) {

	if err := validateProfile(p, uc.today()); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateProfile(ctx, id, p)
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "profile_updated",
		Entity:   "profile",
		EntityID: audit.ID(id),
	})

	return updated, nil
}
