package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/profile-catalog/internal/httpresp"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

type VocabularyHandler struct{}

func NewVocabularyHandler() *VocabularyHandler {
	return &VocabularyHandler{}
}

// List serves every attribute vocabulary with labels in the requested
// language, for building filter forms.
func (h *VocabularyHandler) List(c *gin.Context) {
	lang, ok := langQuery(c)
	if !ok {
		return
	}
	httpresp.List(c, locale.Vocabularies(lang))
}
