package service

import (
	"context"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/dto"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/view"
)

type ListServices struct {
	repo  domain.Repository
	cache Cache
}

func NewListServices(repo domain.Repository, cache Cache) *ListServices {
	return &ListServices{repo: repo, cache: cache}
}

func (uc *ListServices) Execute(
	ctx context.Context,
	lang locale.Lang,
	offset int,
	limit int,
) ([]dto.ServiceDTO, int64, error) {

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > domain.MaxLimit {
		limit = domain.DefaultLimit
	}

	var (
		key    string
		cached cachedPage
	)
	if uc.cache != nil {
		if gen, ok := uc.cache.Generation(ctx, generationKey); ok {
			key = listKey(gen, lang, offset, limit)
		}
	}
	if key != "" && uc.cache.GetJSON(ctx, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	services, total, err := uc.repo.ListServices(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	out := view.ServiceList(services, lang)
	if key != "" {
		uc.cache.SetJSON(ctx, key, cachedPage{Items: out, Total: total})
	}
	return out, total, nil
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(
	ctx context.Context,
	id uint,
	lang locale.Lang,
) (*dto.ServiceDTO, error) {

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	out := view.Service(s, lang)
	return &out, nil
}
