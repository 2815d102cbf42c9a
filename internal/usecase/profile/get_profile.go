package profile

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/dto"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/view"
)

type GetProfile struct {
	repo  domain.Repository
	today func() time.Time
}

func NewGetProfile(repo domain.Repository, tz string) *GetProfile {
	return &GetProfile{repo: repo, today: todayIn(tz)}
}

func (uc *GetProfile) Execute(
	ctx context.Context,
	id uint,
	lang locale.Lang,
) (*dto.ProfileDTO, error) {

	p, err := uc.repo.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	out := view.Profile(p, lang, uc.today())
	return &out, nil
}
