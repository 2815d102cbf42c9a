package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

// idParam reads a positive numeric path parameter, writing a 400 when it
// is malformed.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "Invalid identifier.")
		return 0, false
	}
	return uint(id), true
}

func langQuery(c *gin.Context) (locale.Lang, bool) {
	lang, ok := locale.ParseLang(c.Query("lang"))
	if !ok {
		httperr.BadRequest(c, "invalid_lang", "lang must be one of uk, ru, en.")
		return "", false
	}
	return lang, true
}

// splitIDs accepts repeated and comma-separated values alike.
func splitIDs(raw []string) ([]uint, error) {
	var out []uint
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil || id == 0 {
				return nil, httperr.ErrValidation("invalid service id %q", part)
			}
			out = append(out, uint(id))
		}
	}
	return out, nil
}
