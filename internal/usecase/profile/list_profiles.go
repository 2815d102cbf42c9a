package profile

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/dto"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/view"
)

type ListProfiles struct {
	repo  domain.Repository
	today func() time.Time
}

func NewListProfiles(repo domain.Repository, tz string) *ListProfiles {
	return &ListProfiles{repo: repo, today: todayIn(tz)}
}

func (uc *ListProfiles) Execute(
	ctx context.Context,
	q domain.ProfileQuery,
) ([]dto.ProfileShortDTO, int64, error) {

	if _, ok := domain.ParseSortBy(string(q.Sort)); !ok {
		return nil, 0, httperr.ErrValidation("unknown sort_by %q", q.Sort)
	}
	if err := q.Filter.Validate(); err != nil {
		return nil, 0, httperr.ErrValidation("%s", err.Error())
	}

	q.Today = uc.today()

	profiles, total, err := uc.repo.FindProfiles(ctx, q.Normalize())
	if err != nil {
		return nil, 0, err
	}

	return view.ProfileShortList(profiles, q.Today), total, nil
}
