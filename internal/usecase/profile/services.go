package profile

import (
	"context"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

type LinkService struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewLinkService(repo domain.Repository, audit *audit.Logger) *LinkService {
	return &LinkService{repo: repo, audit: audit}
}

// Execute links the service to the profile. Linking an already linked
// pair replaces its additional cost.
func (uc *LinkService) Execute(
	ctx context.Context,
	actor string,
	profileID uint,
	serviceID uint,
	additionalCost *int,
) (*models.ProfileService, error) {

	if additionalCost != nil && *additionalCost < 0 {
		return nil, httperr.ErrValidation("additional_cost must not be negative")
	}

	ps := &models.ProfileService{
		ProfileID:      profileID,
		ServiceID:      serviceID,
		AdditionalCost: additionalCost,
	}
	if err := uc.repo.UpsertProfileService(ctx, ps); err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "profile_service_linked",
		Entity:   "profile",
		EntityID: audit.ID(profileID),
		Metadata: map[string]any{"service_id": serviceID, "additional_cost": additionalCost},
	})
	return ps, nil
}

type UnlinkService struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUnlinkService(repo domain.Repository, audit *audit.Logger) *UnlinkService {
	return &UnlinkService{repo: repo, audit: audit}
}

func (uc *UnlinkService) Execute(
	ctx context.Context,
	actor string,
	profileID uint,
	serviceID uint,
) error {

	if err := uc.repo.DeleteProfileService(ctx, profileID, serviceID); err != nil {
		return err
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "profile_service_unlinked",
		Entity:   "profile",
		EntityID: audit.ID(profileID),
		Metadata: map[string]any{"service_id": serviceID},
	})
	return nil
}
