package handlers

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/profile-catalog/internal/config"
	"github.com/BruksfildServices01/profile-catalog/internal/httperr"
	"github.com/BruksfildServices01/profile-catalog/internal/httpresp"
	"github.com/BruksfildServices01/profile-catalog/internal/middleware"
)

type AuthHandler struct {
	config *config.Config
	now    func() time.Time
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg, now: time.Now}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !h.checkCredentials(strings.TrimSpace(req.Username), req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, expiresAt, err := h.generateToken(h.config.AdminUsername)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	httpresp.OK(c, gin.H{
		"token":      token,
		"expires_at": expiresAt,
	})
}

// checkCredentials always fails while no admin password hash is configured.
func (h *AuthHandler) checkCredentials(username, password string) bool {
	if h.config.AdminPasswordHash == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(h.config.AdminUsername)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.config.AdminPasswordHash), []byte(password)) == nil
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(username string) (string, time.Time, error) {
	now := h.now()
	exp := now.Add(h.config.JWTTTL)

	claims := jwt.MapClaims{
		"sub":  username,
		"role": middleware.RoleAdmin,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}
