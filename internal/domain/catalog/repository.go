package catalog

import (
	"context"

	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

// Repository is the entity store. Lookups by id report a missing row with
// the matching Err*NotFound sentinel; nothing is changed in that case.
type Repository interface {
	// -------- Profile --------
	// FindProfiles returns one page and the number of matches overall.
	FindProfiles(
		ctx context.Context,
		q ProfileQuery,
	) ([]models.Profile, int64, error)

	GetProfile(
		ctx context.Context,
		id uint,
	) (*models.Profile, error)

	CreateProfile(
		ctx context.Context,
		p *models.Profile,
	) error

	UpdateProfile(
		ctx context.Context,
		id uint,
		p *models.Profile,
	) (*models.Profile, error)

	DeleteProfile(
		ctx context.Context,
		id uint,
	) error

	HasProfiles(ctx context.Context) (bool, error)

	// -------- Photo / Price --------
	CreatePhoto(
		ctx context.Context,
		ph *models.Photo,
	) error

	DeletePhoto(
		ctx context.Context,
		id uint,
	) (*models.Photo, error)

	CreatePrice(
		ctx context.Context,
		pr *models.Price,
	) error

	UpdatePrice(
		ctx context.Context,
		id uint,
		pr *models.Price,
	) (*models.Price, error)

	DeletePrice(
		ctx context.Context,
		id uint,
	) error

	// -------- Service --------
	ListServices(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Service, int64, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	CreateService(
		ctx context.Context,
		s *models.Service,
	) error

	UpdateService(
		ctx context.Context,
		id uint,
		s *models.Service,
	) (*models.Service, error)

	DeleteService(
		ctx context.Context,
		id uint,
	) error

	HasServices(ctx context.Context) (bool, error)

	// -------- Profile <-> Service --------
	UpsertProfileService(
		ctx context.Context,
		ps *models.ProfileService,
	) error

	DeleteProfileService(
		ctx context.Context,
		profileID uint,
		serviceID uint,
	) error

	// Transaction runs fn against a repository bound to one transaction.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
