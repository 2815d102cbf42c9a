package service

import (
	"context"
	"encoding/json"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/profile-catalog/internal/audit"
	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/infra/repository"
	"github.com/BruksfildServices01/profile-catalog/internal/locale"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	"github.com/BruksfildServices01/profile-catalog/internal/testutil"
)

// memCache stands in for redis.
type memCache struct {
	items map[string][]byte
	gens  map[string]int64
	hits  int
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}, gens: map[string]int64{}}
}

func (m *memCache) Generation(_ context.Context, key string) (int64, bool) {
	return m.gens[key], true
}

func (m *memCache) Bump(_ context.Context, key string) {
	m.gens[key]++
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) bool {
	b, ok := m.items[key]
	if !ok {
		return false
	}
	m.hits++
	return json.Unmarshal(b, out) == nil
}

func (m *memCache) SetJSON(_ context.Context, key string, value any) {
	b, _ := json.Marshal(value)
	m.items[key] = b
}

func (m *memCache) DeleteByPattern(_ context.Context, pattern string) {
	for k := range m.items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.items, k)
		}
	}
}

func newService(ua, ru, en string, order int) *models.Service {
	return &models.Service{NameUA: ua, NameRU: ru, NameEN: en, Order: order}
}

func TestServices_CRUDAndCache(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCatalogGormRepository(db)
	logger := audit.New(db)
	cache := newMemCache()
	ctx := context.Background()

	create := NewCreateService(repo, cache, logger)
	list := NewListServices(repo, cache)

	_, err := create.Execute(ctx, "admin", newService("", "Массаж", "Massage", 1))
	assert.True(t, httperr.IsValidation(err))

	second, err := create.Execute(ctx, "admin", newService("Душ", "Душ", "Shower", 2))
	require.NoError(t, err)
	first, err := create.Execute(ctx, "admin", newService("Масаж", "Массаж", "Massage", 1))
	require.NoError(t, err)

	out, total, err := list.Execute(ctx, locale.EN, 0, 0)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "Massage", out[0].LocalizedName)
	assert.Equal(t, "Shower", out[1].LocalizedName)

	cachedOut, cachedTotal, err := list.Execute(ctx, locale.EN, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, out, cachedOut)
	assert.EqualValues(t, 2, cachedTotal)

	update := NewUpdateService(repo, cache, logger)
	_, err = update.Execute(ctx, "admin", second.ID, newService("Душ", "Душ", "Bath", 0))
	require.NoError(t, err)
	assert.Empty(t, cache.items, "writes drop cached lists")

	out, _, err = list.Execute(ctx, locale.EN, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Bath", out[0].LocalizedName)

	get := NewGetService(repo)
	one, err := get.Execute(ctx, first.ID, locale.UK)
	require.NoError(t, err)
	assert.Equal(t, "Масаж", one.LocalizedName)

	del := NewDeleteService(repo, cache, logger)
	require.NoError(t, del.Execute(ctx, "admin", first.ID))
	assert.ErrorIs(t, del.Execute(ctx, "admin", first.ID), domain.ErrServiceNotFound)

	_, err = get.Execute(ctx, first.ID, locale.UK)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestListServices_NilCache(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCatalogGormRepository(db)

	out, total, err := NewListServices(repo, nil).Execute(context.Background(), locale.RU, -5, 500)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
	assert.Zero(t, total)
}

func TestListServices_TotalIgnoresPage(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCatalogGormRepository(db)
	create := NewCreateService(repo, nil, audit.New(db))
	ctx := context.Background()

	for i, en := range []string{"Massage", "Shower", "Sauna"} {
		_, err := create.Execute(ctx, "admin", newService(en, en, en, i))
		require.NoError(t, err)
	}

	out, total, err := NewListServices(repo, nil).Execute(ctx, locale.EN, 1, 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Shower", out[0].LocalizedName)
	assert.EqualValues(t, 3, total)
}

// A reader that queried the store before a write and stores its page after
// the write's invalidation must not have that page served afterwards.
func TestListServices_LateWriteAfterInvalidateIsNotServed(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewCatalogGormRepository(db)
	logger := audit.New(db)
	cache := newMemCache()
	ctx := context.Background()

	create := NewCreateService(repo, cache, logger)
	list := NewListServices(repo, cache)

	_, err := create.Execute(ctx, "admin", newService("Масаж", "Массаж", "Massage", 1))
	require.NoError(t, err)

	// the slow reader captured the generation and loaded the old rows
	gen, ok := cache.Generation(ctx, generationKey)
	require.True(t, ok)
	stale, staleTotal, err := NewListServices(repo, nil).Execute(ctx, locale.EN, 0, 0)
	require.NoError(t, err)

	_, err = create.Execute(ctx, "admin", newService("Душ", "Душ", "Shower", 2))
	require.NoError(t, err)

	// its SetJSON arrives after the invalidation
	cache.SetJSON(ctx, listKey(gen, locale.EN, 0, domain.DefaultLimit), cachedPage{Items: stale, Total: staleTotal})

	out, total, err := list.Execute(ctx, locale.EN, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, cache.hits)
	require.Len(t, out, 2)
	assert.EqualValues(t, 2, total)
}
