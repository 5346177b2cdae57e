package booking

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

// CreateBooking godoc
// @Summary      Create booking
// @Description  Books a quantity of spots on a slot; pricing is recomputed server-side.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      201 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	booking, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			api.Fail(c, http.StatusNotFound, "Slot not found")
		case errors.Is(err, ErrExperienceNotFound):
			api.Fail(c, http.StatusNotFound, "Experience not found")
		case errors.Is(err, ErrPromoNotFound):
			api.Fail(c, http.StatusNotFound, "Invalid or inactive promo code")
		case errors.Is(err, ErrInsufficientCapacity):
			api.Fail(c, http.StatusBadRequest, "Not enough available spots")
		default:
			logger.Errorf("Failed to create booking: %v", err)
			api.Fail(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	api.Created(c, booking, "Booking created successfully")
}

// GetBooking godoc
// @Summary      Get booking by reference
// @Description  Returns a booking by its shareable reference code.
// @Tags         bookings
// @Produce      json
// @Param        referenceID path string true "Reference code"
// @Success      200 {object} api.Response
// @Failure      404 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /api/bookings/{referenceID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	referenceID := c.Param("referenceID")

	booking, err := h.service.GetByReferenceID(c.Request.Context(), referenceID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			api.Fail(c, http.StatusNotFound, "Booking not found")
			return
		}
		logger.Errorf("Failed to fetch booking %s: %v", referenceID, err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}

	api.OK(c, booking)
}

// ListBookingsBySlot godoc
// @Summary      List bookings by slot
// @Description  Admin-only: all bookings recorded against a slot.
// @Tags         admin,bookings
// @Produce      json
// @Security     BearerAuth
// @Param        slotID path int true "Slot ID"
// @Success      200 {object} api.Response
// @Failure      400 {object} api.Response
// @Failure      401 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /admin/slots/{slotID}/bookings [get]
func (h *Handler) ListBookingsBySlot(c *gin.Context) {
	slotID, err := strconv.Atoi(c.Param("slotID"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "Invalid slot ID")
		return
	}

	bookings, err := h.service.GetBookingsBySlot(c.Request.Context(), slotID)
	if err != nil {
		logger.Errorf("Failed to fetch bookings for slot %d: %v", slotID, err)
		api.Fail(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	api.OK(c, bookings)
}
