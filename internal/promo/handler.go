package promo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trailbook/internal/api"
	"trailbook/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Validate godoc
// @Summary      Validate promo code
// @Description  Resolves a code to its discount type and magnitude.
// @Tags         promo
// @Accept       json
// @Produce      json
// @Param        request body promo.ValidateRequest true "Promo code"
// @Success      200 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/promo/validate [post]
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "Promo code is required")
		return
	}

	resolved, err := h.service.Validate(c.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(c, http.StatusNotFound, "Invalid or inactive promo code")
			return
		}
		logger.Errorf("Failed to validate promo code: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to validate promo code")
		return
	}

	api.OK(c, resolved)
}

// Create godoc
// @Summary      Create promo code
// @Description  Admin-only: add a promo code.
// @Tags         admin,promo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body promo.CreatePromoRequest true "Promo payload"
// @Success      201 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      401 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /admin/promos [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	promo, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCodeTaken) {
			api.Fail(c, http.StatusConflict, "Promo code already exists")
			return
		}
		logger.Errorf("Failed to create promo code: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create promo code")
		return
	}

	api.Created(c, promo, "Promo code created successfully")
}
