package usecase

import (
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/mapper"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

// DashboardUseCase agrega los KPIs del programa para el tablero de administración.
type DashboardUseCase struct {
	analytics   repository.AnalyticsRepository
	redemptions repository.RedemptionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analytics repository.AnalyticsRepository, redemptions repository.RedemptionRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, redemptions: redemptions}
}

// Summary totales globales, top de categorías por huellas entregadas y los
// últimos canjes registrados.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryDTO, error) {
	totals, err := uc.analytics.Totals()
	if err != nil {
		return nil, err
	}
	top, err := uc.analytics.TopCategories(5)
	if err != nil {
		return nil, err
	}
	categories := make([]dto.CategoryTotalDTO, 0, len(top))
	for _, c := range top {
		categories = append(categories, dto.CategoryTotalDTO{
			Code:        c.Code,
			Description: c.Description,
			Points:      c.Points,
			Count:       c.Count,
		})
	}
	recent, err := uc.redemptions.List(5, 0)
	if err != nil {
		return nil, err
	}
	recentDTOs := make([]dto.RedemptionResponse, 0, len(recent))
	for _, r := range recent {
		recentDTOs = append(recentDTOs, mapper.RedemptionToResponse(r))
	}
	return &dto.DashboardSummaryDTO{
		ActiveUsers:        totals.ActiveUsers,
		AssignedPoints:     totals.AssignedPoints,
		RedeemedPoints:     totals.RedeemedPoints,
		PendingRedemptions: totals.PendingRedemptions,
		TopCategories:      categories,
		RecentRedemptions:  recentDTOs,
	}, nil
}
