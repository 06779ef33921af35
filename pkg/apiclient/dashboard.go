package apiclient

import (
	"context"

	"github.com/publicis/rewards-api/internal/application/dto"
)

// DashboardSummary KPIs del programa (solo admin).
func (c *Client) DashboardSummary(ctx context.Context) (dto.DashboardSummaryDTO, error) {
	var out dto.DashboardSummaryDTO
	err := c.do(ctx, "GET", "/dashboard/summary", nil, &out)
	return out, err
}

// Team árbol de equipo del usuario autenticado (reportes directos expandidos).
func (c *Client) Team(ctx context.Context) ([]dto.EmployeeNodeDTO, error) {
	var out []dto.EmployeeNodeDTO
	err := c.do(ctx, "GET", "/employees/team", nil, &out)
	return out, err
}
