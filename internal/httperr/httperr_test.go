package httperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, httperr.IsNotFound(httperr.ErrBusiness("profile_not_found")))
	assert.True(t, httperr.IsNotFound(fmt.Errorf("wrap: %w", httperr.ErrBusiness("price_not_found"))))
	assert.False(t, httperr.IsNotFound(httperr.ErrBusiness("invalid_state")))
	assert.False(t, httperr.IsNotFound(errors.New("profile_not_found")))
}

func TestIsValidation(t *testing.T) {
	err := fmt.Errorf("bind: %w", httperr.ErrValidation("age_min must not exceed %s", "age_max"))
	assert.True(t, httperr.IsValidation(err))
	assert.Equal(t, "bind: age_min must not exceed age_max", err.Error())
	assert.False(t, httperr.IsValidation(errors.New("x")))
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", httperr.ErrValidation("bad"), http.StatusBadRequest, "invalid_request"},
		{"not_found", httperr.ErrBusiness("service_not_found"), http.StatusNotFound, "service_not_found"},
		{"other", errors.New("db down"), http.StatusInternalServerError, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			httperr.FromError(c, tt.err, "fallback")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error_code":"`+tt.code+`"`)
		})
	}
}
