package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/httpresp"
	"github.com/BruksfildServices01/profile-catalog/internal/middleware"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	ucService "github.com/BruksfildServices01/profile-catalog/internal/usecase/service"
)

type AdminServiceHandler struct {
	create *ucService.CreateService
	update *ucService.UpdateService
	delete *ucService.DeleteService
}

func NewAdminServiceHandler(
	create *ucService.CreateService,
	update *ucService.UpdateService,
	del *ucService.DeleteService,
) *AdminServiceHandler {
	return &AdminServiceHandler{create: create, update: update, delete: del}
}

type ServiceRequest struct {
	NameUA string `json:"name_ua" binding:"required"`
	NameRU string `json:"name_ru" binding:"required"`
	NameEN string `json:"name_en" binding:"required"`
	Order  int    `json:"order" binding:"min=0"`
}

func (r ServiceRequest) toModel() *models.Service {
	return &models.Service{NameUA: r.NameUA, NameRU: r.NameRU, NameEN: r.NameEN, Order: r.Order}
}

func (h *AdminServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.Actor(c), req.toModel())
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_service")
		return
	}

	httpresp.Created(c, s)
}

func (h *AdminServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	s, err := h.update.Execute(c.Request.Context(), middleware.Actor(c), id, req.toModel())
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_service")
		return
	}

	httpresp.OK(c, s)
}

func (h *AdminServiceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_service")
		return
	}

	httpresp.NoContent(c)
}
