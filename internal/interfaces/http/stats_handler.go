package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shophub/shophub-api/internal/application/usecase"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler builds the handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Store statistics (admin)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
