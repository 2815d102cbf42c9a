package profile

import (
	"context"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

type AddPrice struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewAddPrice(repo domain.Repository, audit *audit.Logger) *AddPrice {
	return &AddPrice{repo: repo, audit: audit}
}

func (uc *AddPrice) Execute(
	ctx context.Context,
	actor string,
	profileID uint,
	pr *models.Price,
) (*models.Price, error) {

	if err := validatePrice(pr); err != nil {
		return nil, err
	}

	pr.ID = 0
	pr.ProfileID = profileID
	if err := uc.repo.CreatePrice(ctx, pr); err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "price_added",
		Entity:   "price",
		EntityID: audit.ID(pr.ID),
		Metadata: map[string]any{"profile_id": profileID, "hours": pr.Hours, "current_cost": pr.CurrentCost},
	})
	return pr, nil
}

type UpdatePrice struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewUpdatePrice(repo domain.Repository, audit *audit.Logger) *UpdatePrice {
	return &UpdatePrice{repo: repo, audit: audit}
}

func (uc *UpdatePrice) Execute(
	ctx context.Context,
	actor string,
	id uint,
	pr *models.Price,
) (*models.Price, error) {

	if err := validatePrice(pr); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdatePrice(ctx, id, pr)
	if err != nil {
		return nil, err
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "price_updated",
		Entity:   "price",
		EntityID: audit.ID(id),
		Metadata: map[string]any{"hours": updated.Hours, "current_cost": updated.CurrentCost},
	})
	return updated, nil
}

type DeletePrice struct {
	repo  domain.Repository
	audit *audit.Logger
}

func NewDeletePrice(repo domain.Repository, audit *audit.Logger) *DeletePrice {
	return &DeletePrice{repo: repo, audit: audit}
}

func (uc *DeletePrice) Execute(ctx context.Context, actor string, id uint) error {
	if err := uc.repo.DeletePrice(ctx, id); err != nil {
		return err
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "price_deleted",
		Entity:   "price",
		EntityID: audit.ID(id),
	})
	return nil
}
