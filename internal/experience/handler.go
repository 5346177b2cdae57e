package experience

import (
	"errors"
	"net/http"
	"strconv"

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

// ListExperiences godoc
// @Summary      List experiences
// @Description  Returns the catalog, newest first.
// @Tags         experiences
// @Produce      json
// @Success      200 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/experiences [get]
func (h *Handler) ListExperiences(c *gin.Context) {
	experiences, err := h.service.ListExperiences(c.Request.Context())
	if err != nil {
		logger.Errorf("Failed to fetch experiences: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch experiences")
		return
	}

	api.OK(c, experiences)
}

// GetExperience godoc
// @Summary      Get experience detail
// @Description  Returns one experience with its slots ordered by date then time.
// @Tags         experiences
// @Produce      json
// @Param        id path int true "Experience ID"
// @Success      200 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/experiences/{id} [get]
func (h *Handler) GetExperience(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid experience ID")
		return
	}

	detail, err := h.service.GetExperienceDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(c, http.StatusNotFound, "Experience not found")
			return
		}
		logger.Errorf("Failed to fetch experience %d: %v", id, err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch experience details")
		return
	}

	api.OK(c, detail)
}

// CreateExperience godoc
// @Summary      Create experience
// @Description  Admin-only: add a catalog listing.
// @Tags         admin,experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body experience.CreateExperienceRequest true "Experience payload"
// @Success      201 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      401 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /admin/experiences [post]
func (h *Handler) CreateExperience(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	exp, err := h.service.CreateExperience(c.Request.Context(), req)
	if err != nil {
		logger.Errorf("Failed to create experience: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create experience")
		return
	}

	api.Created(c, exp, "Experience created successfully")
}

// CreateSlot godoc
// @Summary      Create slot
// @Description  Admin-only: add a date/time slot to an experience.
// @Tags         admin,experiences
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Experience ID"
// @Param        request body experience.CreateSlotRequest true "Slot payload"
// @Success      201 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      401 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /admin/experiences/{id}/slots [post]
func (h *Handler) CreateSlot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid experience ID")
		return
	}

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.AvailableSpots > req.TotalSpots {
		api.Fail(c, http.StatusBadRequest, "availableSpots cannot exceed totalSpots")
		return
	}

	slot, err := h.service.CreateSlot(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(c, http.StatusNotFound, "Experience not found")
			return
		}
		logger.Errorf("Failed to create slot for experience %d: %v", id, err)
		api.Fail(c, http.StatusInternalServerError, "Failed to create slot")
		return
	}

	api.Created(c, slot, "Slot created successfully")
}
