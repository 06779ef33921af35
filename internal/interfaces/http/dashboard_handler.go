package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/publicis/rewards-api/internal/application/usecase"
)

// DashboardHandler KPIs del programa y árbol de equipo.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	employeeUC  *usecase.EmployeeUseCase
}

// NewDashboardHandler construye el handler del tablero.
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, employeeUC *usecase.EmployeeUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, employeeUC: employeeUC}
}

// Summary godoc
// @Summary      KPIs del programa de reconocimiento
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Summary()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Team árbol de equipo del usuario autenticado (manager → reportes, recursivo).
func (h *DashboardHandler) Team(c *fiber.Ctx) error {
	out, err := h.employeeUC.Team(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
