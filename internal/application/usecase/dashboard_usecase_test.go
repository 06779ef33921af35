package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	totals repository.DashboardTotals
	top    []*repository.CategoryTotal
}

func (r *fakeAnalyticsRepo) Totals() (*repository.DashboardTotals, error) {
	t := r.totals
	return &t, nil
}

func (r *fakeAnalyticsRepo) TopCategories(limit int) ([]*repository.CategoryTotal, error) {
	if len(r.top) > limit {
		return r.top[:limit], nil
	}
	return r.top, nil
}

func TestDashboardSummary_AgregaTotalesTopYRecientes(t *testing.T) {
	analytics := &fakeAnalyticsRepo{
		totals: repository.DashboardTotals{
			ActiveUsers: 12, AssignedPoints: 3400, RedeemedPoints: 900, PendingRedemptions: 3,
		},
		top: []*repository.CategoryTotal{
			{Code: "TRABAJO_EQUIPO", Description: "Trabajo en equipo", Points: 600, Count: 10},
			{Code: "INNOVACION", Description: "Innovación", Points: 240, Count: 3},
		},
	}
	redemptions := &fakeRedemptionRepo{items: []*entity.Redemption{
		{ID: "r1", PrizeCode: "TAZA", Points: 50, Status: entity.RedemptionPendiente, RedeemedAt: time.Now()},
	}}
	uc := usecase.NewDashboardUseCase(analytics, redemptions)

	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, 12, out.ActiveUsers)
	assert.Equal(t, 3400, out.AssignedPoints)
	assert.Equal(t, 3, out.PendingRedemptions)
	require.Len(t, out.TopCategories, 2)
	assert.Equal(t, "TRABAJO_EQUIPO", out.TopCategories[0].Code)
	require.Len(t, out.RecentRedemptions, 1)
	assert.Equal(t, "TAZA", out.RecentRedemptions[0].PrizeCode)
}
