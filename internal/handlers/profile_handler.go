package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/httpresp"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	ucProfile "github.com/BruksfildServices01/profile-catalog/internal/usecase/profile"
)

type ProfileHandler struct {
	list *ucProfile.ListProfiles
	get  *ucProfile.GetProfile
}

func NewProfileHandler(
	list *ucProfile.ListProfiles,
	get *ucProfile.GetProfile,
) *ProfileHandler {
	return &ProfileHandler{list: list, get: get}
}

// --------- Requests ---------

type ListProfilesQuery struct {
	Offset *int `form:"offset" binding:"omitempty,min=0"`
	Skip   *int `form:"skip" binding:"omitempty,min=0"`
	Limit  *int `form:"limit" binding:"omitempty,min=1,max=100"`

	AgeMin    *int     `form:"age_min" binding:"omitempty,min=0"`
	AgeMax    *int     `form:"age_max" binding:"omitempty,min=0"`
	HeightMin *int     `form:"height_min" binding:"omitempty,min=0"`
	HeightMax *int     `form:"height_max" binding:"omitempty,min=0"`
	WeightMin *int     `form:"weight_min" binding:"omitempty,min=0"`
	WeightMax *int     `form:"weight_max" binding:"omitempty,min=0"`
	BreastMin *float64 `form:"breast_min" binding:"omitempty,min=0"`
	BreastMax *float64 `form:"breast_max" binding:"omitempty,min=0"`
	PriceMin  *int     `form:"price_min" binding:"omitempty,min=0"`
	PriceMax  *int     `form:"price_max" binding:"omitempty,min=0"`

	City       string   `form:"city"`
	ServiceIDs []string `form:"service_ids"`
	SortBy     string   `form:"sort_by"`
}

func (q ListProfilesQuery) toDomain() (domain.ProfileQuery, error) {
	sort, ok := domain.ParseSortBy(q.SortBy)
	if !ok {
		return domain.ProfileQuery{}, httperr.ErrValidation("unknown sort_by %q", q.SortBy)
	}

	ids, err := splitIDs(q.ServiceIDs)
	if err != nil {
		return domain.ProfileQuery{}, err
	}

	out := domain.ProfileQuery{
		Filter: domain.ProfileFilter{
			AgeMin:     q.AgeMin,
			AgeMax:     q.AgeMax,
			HeightMin:  q.HeightMin,
			HeightMax:  q.HeightMax,
			WeightMin:  q.WeightMin,
			WeightMax:  q.WeightMax,
			BreastMin:  q.BreastMin,
			BreastMax:  q.BreastMax,
			PriceMin:   q.PriceMin,
			PriceMax:   q.PriceMax,
			ServiceIDs: ids,
		},
		Sort:  sort,
		Limit: domain.DefaultLimit,
	}

	if q.City != "" {
		city := locale.City(q.City)
		out.Filter.City = &city
	}
	switch {
	case q.Offset != nil:
		out.Offset = *q.Offset
	case q.Skip != nil:
		out.Offset = *q.Skip
	}
	if q.Limit != nil {
		out.Limit = *q.Limit
	}
	return out, nil
}

// --------- Handlers ---------

func (h *ProfileHandler) List(c *gin.Context) {
	var req ListProfilesQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	q, err := req.toDomain()
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_profiles")
		return
	}

	out, total, err := h.list.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_profiles")
		return
	}

	httpresp.Page(c, out, total)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	lang, ok := langQuery(c)
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), id, lang)
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_profile")
		return
	}

	httpresp.OK(c, out)
}
