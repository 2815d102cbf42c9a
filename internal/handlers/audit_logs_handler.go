package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/httpresp"
	"github.com/BruksfildServices01/profile-catalog/internal/timezone"
)

type AuditLogsHandler struct {
	audit *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{audit: logger}
}

type AuditLogsQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	Actor  string `form:"actor"`
	From   string `form:"from"`
	To     string `form:"to"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var req AuditLogsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 50
	}

	f := audit.Filter{
		Action: req.Action,
		Entity: req.Entity,
		Actor:  req.Actor,
		Offset: (req.Page - 1) * req.Limit,
		Limit:  req.Limit,
	}

	var ok bool
	if f.From, ok = optionalDate(c, "from", req.From); !ok {
		return
	}
	if f.To, ok = optionalDate(c, "to", req.To); !ok {
		return
	}

	logs, total, err := h.audit.List(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err, "audit_list_failed")
		return
	}

	httpresp.OK(c, gin.H{
		"page":  req.Page,
		"limit": req.Limit,
		"total": total,
		"logs":  logs,
	})
}

func optionalDate(c *gin.Context, name, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	d, err := timezone.ParseDate(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, name+" must be YYYY-MM-DD.")
		return nil, false
	}
	return &d, true
}
