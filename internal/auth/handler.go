package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trailbook/internal/api"
	"trailbook/internal/logger"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	passwordHash string
	jwtSecret    string
}

func NewHandler(passwordHash, jwtSecret string) *Handler {
	return &Handler{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
	}
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges the admin password for a bearer token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body auth.LoginRequest true "Credentials"
// @Success      200 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      401 {object} api.Response
// @Router       /admin/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "Password is required")
		return
	}

	if !CheckPassword(h.passwordHash, req.Password) {
		api.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateAdminToken(h.jwtSecret)
	if err != nil {
		logger.Errorf("Failed to generate admin token: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	api.OK(c, LoginResponse{Token: token})
}
