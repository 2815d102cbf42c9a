package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/httpresp"
	ucService "github.com/BruksfildServices01/profile-catalog/internal/usecase/service"
)

type ServiceHandler struct {
	list *ucService.ListServices
	get  *ucService.GetService
}

func NewServiceHandler(
	list *ucService.ListServices,
	get *ucService.GetService,
) *ServiceHandler {
	return &ServiceHandler{list: list, get: get}
}

type ListServicesQuery struct {
	Offset int `form:"offset" binding:"omitempty,min=0"`
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var req ListServicesQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	lang, ok := langQuery(c)
	if !ok {
		return
	}
	if req.Limit == 0 {
		req.Limit = domain.DefaultLimit
	}

	out, total, err := h.list.Execute(c.Request.Context(), lang, req.Offset, req.Limit)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_services")
		return
	}

	httpresp.Page(c, out, total)
}

func (h *ServiceHandler) Get(c *gin.Context) {
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
		httperr.FromError(c, err, "failed_to_load_service")
		return
	}

	httpresp.OK(c, out)
}
