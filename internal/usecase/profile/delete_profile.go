package profile

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/storage"
)

type DeleteProfile struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Logger
}

func NewDeleteProfile(repo domain.Repository, store storage.Store, audit *audit.Logger) *DeleteProfile {
	return &DeleteProfile{repo: repo, store: store, audit: audit}
}

// Execute removes the profile and everything it owns. Photo files are
// removed afterwards; a file that cannot be removed is only logged.
func (uc *DeleteProfile) Execute(
	ctx context.Context,
	actor string,
	id uint,
) error {

	p, err := uc.repo.GetProfile(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteProfile(ctx, id); err != nil {
		return err
	}

	for _, ph := range p.Photos {
		removeFile(ctx, uc.store, ph.FilePath)
	}

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "profile_deleted",
		Entity:   "profile",
		EntityID: audit.ID(id),
		Metadata: map[string]any{"name": p.Name},
	})

	return nil
}

func removeFile(ctx context.Context, store storage.Store, path string) {
	if store == nil {
		return
	}
	if err := store.Delete(ctx, path); err != nil {
		slog.WarnContext(ctx, "photo file not removed", "path", path, "error", err)
	}
}
