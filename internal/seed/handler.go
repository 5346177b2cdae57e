package seed

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trailbook/internal/api"
	"trailbook/internal/logger"
)

type Handler struct {
	seeder *Seeder
}

func NewHandler(seeder *Seeder) *Handler {
	return &Handler{seeder: seeder}
}

// Seed godoc
// @Summary      Seed demo data
// @Description  Admin-only: loads the demo catalog, slots and promo codes. Refuses when data exists.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.Response
// @Failure      401 {object} api.Response
// @Failure      409 {object} api.Response
// @Failure      500 {object} api.Response
// @Router       /admin/seed [post]
func (h *Handler) Seed(c *gin.Context) {
	summary, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrAlreadySeeded) {
			api.Fail(c, http.StatusConflict, "Database already seeded")
			return
		}
		logger.Errorf("Seed failed: %v", err)
		api.Fail(c, http.StatusInternalServerError, "Failed to seed database")
		return
	}

	c.JSON(http.StatusOK, api.Response{
		Success: true,
		Data:    summary,
		Message: "Database seeded successfully!",
	})
}
