package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/httpresp"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/middleware"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	"github.com/BruksfildServices01/profile-catalog/internal/timezone"
	ucProfile "github.com/BruksfildServices01/profile-catalog/internal/usecase/profile"
)

const maxUploadBytes = 10 << 20

type AdminProfileHandler struct {
	create *ucProfile.CreateProfile
	update *ucProfile.UpdateProfile
	delete *ucProfile.DeleteProfile

	addPhoto    *ucProfile.AddPhoto
	deletePhoto *ucProfile.DeletePhoto

	addPrice    *ucProfile.AddPrice
	updatePrice *ucProfile.UpdatePrice
	deletePrice *ucProfile.DeletePrice

	link   *ucProfile.LinkService
	unlink *ucProfile.UnlinkService
}

type AdminProfileUseCases struct {
	Create        *ucProfile.CreateProfile
	Update        *ucProfile.UpdateProfile
	Delete        *ucProfile.DeleteProfile
	AddPhoto      *ucProfile.AddPhoto
	DeletePhoto   *ucProfile.DeletePhoto
	AddPrice      *ucProfile.AddPrice
	UpdatePrice   *ucProfile.UpdatePrice
	DeletePrice   *ucProfile.DeletePrice
	LinkService   *ucProfile.LinkService
	UnlinkService *ucProfile.UnlinkService
}

func NewAdminProfileHandler(uc AdminProfileUseCases) *AdminProfileHandler {
	return &AdminProfileHandler{
		create:      uc.Create,
		update:      uc.Update,
		delete:      uc.Delete,
		addPhoto:    uc.AddPhoto,
		deletePhoto: uc.DeletePhoto,
		addPrice:    uc.AddPrice,
		updatePrice: uc.UpdatePrice,
		deletePrice: uc.DeletePrice,
		link:        uc.LinkService,
		unlink:      uc.UnlinkService,
	}
}

// --------- Requests ---------

type ProfileRequest struct {
	Name       string            `json:"name" binding:"required"`
	BirthDate  string            `json:"birth_date" binding:"required"`
	Phone      string            `json:"phone" binding:"required"`
	Height     int               `json:"height" binding:"required,min=1"`
	Weight     int               `json:"weight" binding:"required,min=1"`
	BreastSize float64           `json:"breast_size" binding:"required,gt=0"`
	HairColor  locale.HairColor  `json:"hair_color" binding:"required"`
	Ethnicity  locale.Ethnicity  `json:"ethnicity" binding:"required"`
	BodyType   locale.BodyType   `json:"body_type" binding:"required"`
	BreastType locale.BreastType `json:"breast_type" binding:"required"`
	City       *locale.City      `json:"city"`

	HasTattoo   bool `json:"has_tattoo"`
	HasPiercing bool `json:"has_piercing"`
	IsVerified  bool `json:"is_verified"`

	DescriptionUA *string `json:"description_ua"`
	DescriptionRU *string `json:"description_ru"`
	DescriptionEN *string `json:"description_en"`
}

func (r ProfileRequest) toModel() (*models.Profile, error) {
	birth, err := timezone.ParseDate(r.BirthDate)
	if err != nil {
		return nil, httperr.ErrValidation("birth_date must be YYYY-MM-DD")
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

type PhotoRequest struct {
	FilePath string `json:"file_path" binding:"required"`
	Order    int    `json:"order"`
}

type PriceRequest struct {
	Hours       int  `json:"hours" binding:"required,min=1"`
	CurrentCost int  `json:"current_cost" binding:"min=0"`
	OldCost     *int `json:"old_cost" binding:"omitempty,min=0"`
}

func (r PriceRequest) toModel() *models.Price {
	return &models.Price{Hours: r.Hours, CurrentCost: r.CurrentCost, OldCost: r.OldCost}
}

type LinkServiceRequest struct {
	AdditionalCost *int `json:"additional_cost" binding:"omitempty,min=0"`
}

// --------- Profiles ---------

func (h *AdminProfileHandler) Create(c *gin.Context) {
	p, ok := bindProfile(c)
	if !ok {
		return
	}

	created, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), p)
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_profile")
		return
	}

	httpresp.Created(c, created)
}

func (h *AdminProfileHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p, ok := bindProfile(c)
	if !ok {
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), id, p)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_profile")
		return
	}

	httpresp.OK(c, updated)
}

func (h *AdminProfileHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_profile")
		return
	}

	httpresp.NoContent(c)
}

func bindProfile(c *gin.Context) (*models.Profile, bool) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return nil, false
	}
	p, err := req.toModel()
	if err != nil {
		httperr.FromError(c, err, "invalid_request")
		return nil, false
	}
	return p, true
}

// --------- Photos ---------

// AddPhoto accepts either a JSON body naming an existing file or a
// multipart upload in field "file".
func (h *AdminProfileHandler) AddPhoto(c *gin.Context) {
	profileID, ok := idParam(c, "id")
	if !ok {
		return
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.uploadPhoto(c, profileID)
		return
	}

	var req PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ph, err := h.addPhoto.Execute(c.Request.Context(), middleware.Actor(c), profileID, req.FilePath, req.Order)
	if err != nil {
		httperr.FromError(c, err, "failed_to_add_photo")
		return
	}

	httpresp.Created(c, ph)
}

func (h *AdminProfileHandler) uploadPhoto(c *gin.Context, profileID uint) {
	header, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Multipart field \"file\" is required.")
		return
	}
	if header.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Photo must be at most 10 MB.")
		return
	}

	order := 0
	if raw := c.PostForm("order"); raw != "" {
		order, err = strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_order", "order must be an integer.")
			return
		}
	}

	f, err := header.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Could not read upload.")
		return
	}
	defer f.Close()

	ph, err := h.addPhoto.Upload(c.Request.Context(), middleware.Actor(c), profileID, order, f)
	if err != nil {
		httperr.FromError(c, err, "failed_to_upload_photo")
		return
	}

	httpresp.Created(c, ph)
}

func (h *AdminProfileHandler) DeletePhoto(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deletePhoto.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_photo")
		return
	}

	httpresp.NoContent(c)
}

// --------- Prices ---------

func (h *AdminProfileHandler) AddPrice(c *gin.Context) {
	profileID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	pr, err := h.addPrice.Execute(c.Request.Context(), middleware.Actor(c), profileID, req.toModel())
	if err != nil {
		httperr.FromError(c, err, "failed_to_add_price")
		return
	}

	httpresp.Created(c, pr)
}

func (h *AdminProfileHandler) UpdatePrice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	pr, err := h.updatePrice.Execute(c.Request.Context(), middleware.Actor(c), id, req.toModel())
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_price")
		return
	}

	httpresp.OK(c, pr)
}

func (h *AdminProfileHandler) DeletePrice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deletePrice.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_price")
		return
	}

	httpresp.NoContent(c)
}

// --------- Services ---------

func (h *AdminProfileHandler) LinkService(c *gin.Context) {
	profileID, ok := idParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := idParam(c, "service_id")
	if !ok {
		return
	}

	var req LinkServiceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", err.Error())
			return
		}
	}

	ps, err := h.link.Execute(c.Request.Context(), middleware.Actor(c), profileID, serviceID, req.AdditionalCost)
	if err != nil {
		httperr.FromError(c, err, "failed_to_link_service")
		return
	}

	httpresp.OK(c, gin.H{
		"profile_id":      ps.ProfileID,
		"service_id":      ps.ServiceID,
		"additional_cost": ps.AdditionalCost,
	})
}

func (h *AdminProfileHandler) UnlinkService(c *gin.Context) {
	profileID, ok := idParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := idParam(c, "service_id")
	if !ok {
		return
	}

	if err := h.unlink.Execute(c.Request.Context(), middleware.Actor(c), profileID, serviceID); err != nil {
		httperr.FromError(c, err, "failed_to_unlink_service")
		return
	}

	httpresp.NoContent(c)
}
