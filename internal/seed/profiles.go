package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	"github.com/BruksfildServices01/profile-catalog/internal/timezone"
)

const profilesFile = "profiles.json"

type profileRecord struct {
	Name       string            `json:"name"`
	BirthDate  string            `json:"birth_date"`
	Phone      string            `json:"phone"`
	Height     int               `json:"height"`
	Weight     int               `json:"weight"`
	BreastSize float64           `json:"breast_size"`
	HairColor  locale.HairColor  `json:"hair_color"`
	Ethnicity  locale.Ethnicity  `json:"ethnicity"`
	BodyType   locale.BodyType   `json:"body_type"`
	BreastType locale.BreastType `json:"breast_type"`
	City       *locale.City      `json:"city"`

	HasTattoo   bool `json:"has_tattoo"`
	HasPiercing bool `json:"has_piercing"`
	IsVerified  bool `json:"is_verified"`

	DescriptionUA *string `json:"description_ua"`
	DescriptionRU *string `json:"description_ru"`
	DescriptionEN *string `json:"description_en"`

	Photos []struct {
		FilePath string `json:"file_path"`
		Order    int    `json:"order"`
	} `json:"photos"`

	Prices []struct {
		Hours       int  `json:"hours"`
		CurrentCost int  `json:"current_cost"`
		OldCost     *int `json:"old_cost"`
	} `json:"prices"`

	Services []uint `json:"services"`
}

func (r profileRecord) toModel() (*models.Profile, error) {
	birth, err := timezone.ParseDate(r.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("profile %q: birth_date: %w", r.Name, err)
	}
	if err := locale.ValidateAttributes(r.HairColor, r.Ethnicity, r.BodyType, r.BreastType, r.City); err != nil {
		return nil, fmt.Errorf("profile %q: %w", r.Name, err)
	}

	return &models.Profile{
		Name:          r.Name,
		BirthDate:     birth,
		Phone:         r.Phone,
		Height:        r.Height,
		Weight:        r.Weight,
		BreastSize:    r.BreastSize,
		HairColor:     r.HairColor,
		Ethnicity:     r.Ethnicity,
		BodyType:      r.BodyType,
		BreastType:    r.BreastType,
		City:          r.City,
		HasTattoo:     r.HasTattoo,
		HasPiercing:   r.HasPiercing,
		IsVerified:    r.IsVerified,
		DescriptionUA: r.DescriptionUA,
		DescriptionRU: r.DescriptionRU,
		DescriptionEN: r.DescriptionEN,
	}, nil
}

type ProfilesSeeder struct {
	Dir string
}

func (ProfilesSeeder) Name() string { return "profiles" }

// Run checks every record before writing any, then inserts all profiles
// with their photos, prices and service links in one transaction, so a
// bad file leaves the store empty and the next start retries it. Links to
// unknown services are skipped.
func (s ProfilesSeeder) Run(ctx context.Context, repo domain.Repository) error {
	exists, err := repo.HasProfiles(ctx)
	if err != nil {
		return err
	}
	if exists {
		slog.InfoContext(ctx, "profiles already initialized, skipping")
		return nil
	}

	var records []profileRecord
	found, err := readJSON(s.Dir, profilesFile, &records)
	if err != nil || !found {
		return err
	}

	profiles := make([]*models.Profile, len(records))
	for i, rec := range records {
		p, err := rec.toModel()
		if err != nil {
			return fmt.Errorf("%s record %d: %w", profilesFile, i, err)
		}
		profiles[i] = p
	}

	err = repo.Transaction(ctx, func(tx domain.Repository) error {
		for i, p := range profiles {
			if err := seedProfile(ctx, tx, p, records[i]); err != nil {
				return fmt.Errorf("profile %q: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range profiles {
		slog.InfoContext(ctx, "profile initialized", "id", p.ID, "name", p.Name)
	}
	return nil
}

func seedProfile(ctx context.Context, tx domain.Repository, p *models.Profile, rec profileRecord) error {
	if err := tx.CreateProfile(ctx, p); err != nil {
		return err
	}

	for _, ph := range rec.Photos {
		if err := tx.CreatePhoto(ctx, &models.Photo{
			ProfileID: p.ID,
			FilePath:  ph.FilePath,
			Order:     ph.Order,
		}); err != nil {
			return err
		}
	}

	for _, pr := range rec.Prices {
		if err := tx.CreatePrice(ctx, &models.Price{
			ProfileID:   p.ID,
			Hours:       pr.Hours,
			CurrentCost: pr.CurrentCost,
			OldCost:     pr.OldCost,
		}); err != nil {
			return err
		}
	}

	for _, serviceID := range rec.Services {
		err := tx.UpsertProfileService(ctx, &models.ProfileService{
			ProfileID: p.ID,
			ServiceID: serviceID,
		})
		if errors.Is(err, domain.ErrServiceNotFound) {
			slog.WarnContext(ctx, "unknown service in seed, skipping",
				"profile", p.Name,
				"service_id", serviceID,
			)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
