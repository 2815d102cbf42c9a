package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/profile-catalog/internal/config"
	"github.com/BruksfildServices01/profile-catalog/internal/infra/repository"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	"github.com/BruksfildServices01/profile-catalog/internal/storage"
	"github.com/BruksfildServices01/profile-catalog/internal/testutil"
)

type api struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	dir := t.TempDir()
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTTTL:            time.Hour,
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		Timezone:          "UTC",
		PhotoDir:          dir,
		StorageDriver:     "local",
	}

	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)

	db := testutil.NewDB(t)
	r := gin.New()
	RegisterRoutes(r, Deps{DB: db, Config: cfg, Store: store})

	return &api{t: t, db: db, router: r}
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *api) login() {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "s3cret"})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	a.token = out.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func profileBody(name string, height int) map[string]any {
	return map[string]any{
		"name":           name,
		"birth_date":     testutil.BornYearsAgo(25).Format("2006-01-02"),
		"phone":          "+380501234567",
		"height":         height,
		"weight":         55,
		"breast_size":    2,
		"hair_color":     "blonde",
		"ethnicity":      "slavic",
		"body_type":      "slim",
		"breast_type":    "natural",
		"city":           "kyiv",
		"description_en": "Hello",
	}
}

type listResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

type shortCard struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	MinPrice *int    `json:"min_price"`
	Main     *string `json:"main_photo"`
}

func TestLogin(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "root", "password": "s3cret"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	a.login()
	assert.NotEmpty(t, a.token)
}

func TestAdminRequiresToken(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/admin/profiles", profileBody("Olena", 170))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestCatalogFlow(t *testing.T) {
	a := newAPI(t)
	a.login()

	// services
	w := a.do(http.MethodPost, "/api/admin/services", map[string]any{
		"name_ua": "Масаж", "name_ru": "Массаж", "name_en": "Massage", "order": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc := decode[models.Service](t, w)

	// profiles
	w = a.do(http.MethodPost, "/api/admin/profiles", profileBody("Olena", 170))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	olena := decode[models.Profile](t, w)

	w = a.do(http.MethodPost, "/api/admin/profiles", profileBody("Iryna", 150))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	bad := profileBody("Bad", 170)
	bad["hair_color"] = "green"
	w = a.do(http.MethodPost, "/api/admin/profiles", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// prices, photos, services
	w = a.do(http.MethodPost, "/api/admin/profiles/"+itoa(olena.ID)+"/prices", map[string]any{"hours": 1, "current_cost": 1500})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	price := decode[models.Price](t, w)

	w = a.do(http.MethodPost, "/api/admin/profiles/"+itoa(olena.ID)+"/photos", map[string]any{"file_path": "seed/a.webp", "order": 0})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPut, "/api/admin/profiles/"+itoa(olena.ID)+"/services/"+itoa(svc.ID), map[string]any{"additional_cost": 300})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodPut, "/api/admin/profiles/999/services/"+itoa(svc.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// public listing
	a.token = ""
	w = a.do(http.MethodGet, "/api/profiles?height_min=160&price_min=1000&service_ids="+itoa(svc.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	list := decode[listResponse[shortCard]](t, w)
	require.Len(t, list.Data, 1)
	assert.EqualValues(t, 1, list.Total)
	assert.Equal(t, "Olena", list.Data[0].Name)
	require.NotNil(t, list.Data[0].MinPrice)
	assert.Equal(t, 1500, *list.Data[0].MinPrice)
	require.NotNil(t, list.Data[0].Main)
	assert.Equal(t, "seed/a.webp", *list.Data[0].Main)

	w = a.do(http.MethodGet, "/api/profiles?sort_by=price_up", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[listResponse[shortCard]](t, w)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "Olena", list.Data[0].Name, "unpriced profiles go last")

	w = a.do(http.MethodGet, "/api/profiles?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[listResponse[shortCard]](t, w)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Iryna", list.Data[0].Name)
	assert.EqualValues(t, 2, list.Total, "total covers every match, not the page")

	// detail
	w = a.do(http.MethodGet, "/api/profiles/"+itoa(olena.ID)+"?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[map[string]any](t, w)
	assert.Equal(t, "Blondes", detail["hair_color_localized"])
	assert.Equal(t, "Hello", detail["description_localized"])
	services := detail["services"].([]any)
	require.Len(t, services, 1)
	assert.Equal(t, "Massage", services[0].(map[string]any)["localized_name"])

	w = a.do(http.MethodGet, "/api/profiles/"+itoa(olena.ID)+"?lang=ru", nil)
	detail = decode[map[string]any](t, w)
	assert.Nil(t, detail["description_localized"])

	w = a.do(http.MethodGet, "/api/profiles/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "profile_not_found")

	// services listing
	w = a.do(http.MethodGet, "/api/services?lang=ru", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Массаж")

	// admin cleanup
	a.login()
	w = a.do(http.MethodPut, "/api/admin/prices/"+itoa(price.ID), map[string]any{"hours": 2, "current_cost": 3000})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodDelete, "/api/admin/services/"+itoa(svc.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = a.do(http.MethodDelete, "/api/admin/services/"+itoa(svc.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodDelete, "/api/admin/profiles/"+itoa(olena.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodGet, "/api/admin/audit-logs?entity=profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[map[string]any](t, w)
	assert.EqualValues(t, 4, logs["total"])
}

func TestListProfiles_InvalidQuery(t *testing.T) {
	a := newAPI(t)

	for _, q := range []string{
		"limit=0",
		"limit=101",
		"offset=-1",
		"age_min=30&age_max=20",
		"sort_by=random",
		"service_ids=abc",
		"city=paris",
		"height_min=tall",
	} {
		w := a.do(http.MethodGet, "/api/profiles?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}

	w := a.do(http.MethodGet, "/api/profiles/1?lang=de", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadPhoto(t *testing.T) {
	a := newAPI(t)
	a.login()

	repo := repository.NewCatalogGormRepository(a.db)
	p := testutil.Profile("Olena", 170)
	require.NoError(t, repo.CreateProfile(context.Background(), &p))

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("order", "3"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/profiles/"+itoa(p.ID)+"/photos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+a.token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	ph := decode[models.Photo](t, w)
	assert.Equal(t, 3, ph.Order)

	// served back through the static route
	w = a.do(http.MethodGet, "/photos/"+ph.FilePath, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVocabularies(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodGet, "/api/vocabularies?lang=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hair_color"`)
	assert.Contains(t, w.Body.String(), `"city"`)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
