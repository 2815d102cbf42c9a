package profile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/imaging"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	"github.com/BruksfildServices01/profile-catalog/internal/storage"
)

const maxPhotoPathLen = 256

type AddPhoto struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Logger
}

func NewAddPhoto(repo domain.Repository, store storage.Store, audit *audit.Logger) *AddPhoto {
	return &AddPhoto{repo: repo, store: store, audit: audit}
}

// Execute records a photo whose file already lives at filePath.
func (uc *AddPhoto) Execute(
	ctx context.Context,
	actor string,
	profileID uint,
	filePath string,
	order int,
) (*models.Photo, error) {

	filePath = strings.TrimSpace(filePath)
	if filePath == "" || len(filePath) > maxPhotoPathLen {
		return nil, httperr.ErrValidation("file_path must be 1..%d characters", maxPhotoPathLen)
	}

	ph := &models.Photo{ProfileID: profileID, FilePath: filePath, Order: order}
	if err := uc.repo.CreatePhoto(ctx, ph); err != nil {
		return nil, err
	}

	uc.logAdded(ctx, actor, ph)
	return ph, nil
}

// Upload converts the image to webp, stores it and records the photo.
func (uc *AddPhoto) Upload(
	ctx context.Context,
	actor string,
	profileID uint,
	order int,
	r io.Reader,
) (*models.Photo, error) {

	if uc.store == nil {
		return nil, errors.New("photo storage is not configured")
	}

	// reject before anything is written
	if _, err := uc.repo.GetProfile(ctx, profileID); err != nil {
		return nil, err
	}

	data, err := imaging.ToWebP(r)
	if err != nil {
		return nil, httperr.ErrValidation("%s", err.Error())
	}

	key := fmt.Sprintf("%d/%s.webp", profileID, uuid.NewString())
	path, err := uc.store.Put(ctx, key, imaging.ContentType, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	ph := &models.Photo{ProfileID: profileID, FilePath: path, Order: order}
	if err := uc.repo.CreatePhoto(ctx, ph); err != nil {
		removeFile(ctx, uc.store, path)
		return nil, err
	}

	uc.logAdded(ctx, actor, ph)
	return ph, nil
}

func (uc *AddPhoto) logAdded(ctx context.Context, actor string, ph *models.Photo) {
	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "photo_added",
		Entity:   "photo",
		EntityID: audit.ID(ph.ID),
		Metadata: map[string]any{"profile_id": ph.ProfileID, "file_path": ph.FilePath},
	})
}

type DeletePhoto struct {
	repo  domain.Repository
	store storage.Store
	audit *audit.Logger
}

func NewDeletePhoto(repo domain.Repository, store storage.Store, audit *audit.Logger) *DeletePhoto {
	return &DeletePhoto{repo: repo, store: store, audit: audit}
}

func (uc *DeletePhoto) Execute(
	ctx context.Context,
	actor string,
	id uint,
) error {

	ph, err := uc.repo.DeletePhoto(ctx, id)
	if err != nil {
		return err
	}

	removeFile(ctx, uc.store, ph.FilePath)

	uc.audit.Log(ctx, audit.Event{
		Actor:    actor,
		Action:   "photo_deleted",
		Entity:   "photo",
		EntityID: audit.ID(id),
		Metadata: map[string]any{"profile_id": ph.ProfileID},
	})
	return nil
}
