package service

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/profile-catalog/internal/dto"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
)

// Cache is satisfied by *cache.Redis; a nil implementation is a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) bool
	SetJSON(ctx context.Context, key string, value any)
	DeleteByPattern(ctx context.Context, pattern string)

	// Generation reports the current value of a counter, false when the
	// cache cannot answer.
	Generation(ctx context.Context, key string) (int64, bool)
	Bump(ctx context.Context, key string)
}

const (
	generationKey  = "services:generation"
	listKeyPattern = "services:list:*"
)

// listKey embeds the generation read before the store was queried. A page
// written after a concurrent bump lands under a generation nobody reads.
func listKey(gen int64, lang locale.Lang, offset, limit int) string {
	return fmt.Sprintf("services:list:g%d:%s:%d:%d", gen, lang, offset, limit)
}

type cachedPage struct {
	Items []dto.ServiceDTO `json:"items"`
	Total int64            `json:"total"`
}

func invalidate(ctx context.Context, c Cache) {
	if c == nil {
		return
	}
	c.Bump(ctx, generationKey)
	c.DeleteByPattern(ctx, listKeyPattern)
}
