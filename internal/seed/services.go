package seed

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
)

const servicesFile = "services.json"

type serviceRecord struct {
	Order  int    `json:"order"`
	NameUA string `json:"name_ua"`
	NameRU string `json:"name_ru"`
	NameEN string `json:"name_en"`
}

type ServicesSeeder struct {
	Dir string
}

func (ServicesSeeder) Name() string { return "services" }

func (s ServicesSeeder) Run(ctx context.Context, repo domain.Repository) error {
	exists, err := repo.HasServices(ctx)
	if err != nil {
		return err
	}
	if exists {
		slog.InfoContext(ctx, "services already initialized, skipping")
		return nil
	}

	var records []serviceRecord
	found, err := readJSON(s.Dir, servicesFile, &records)
	if err != nil || !found {
		return err
	}

	// ids follow file order, which profiles.json refers to
	return repo.Transaction(ctx, func(tx domain.Repository) error {
		for _, rec := range records {
			svc := &models.Service{
				NameUA: rec.NameUA,
				NameRU: rec.NameRU,
				NameEN: rec.NameEN,
				Order:  rec.Order,
			}
			if err := tx.CreateService(ctx, svc); err != nil {
				return err
			}
			slog.InfoContext(ctx, "service initialized", "id", svc.ID, "name", svc.NameEN)
		}
		return nil
	})
}
