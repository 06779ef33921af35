package postgres

import (
	"context"
	"fmt"

	"github.com/publicis/rewards-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación para los tableros sobre PostgreSQL.
type AnalyticsRepo struct {
	db DB
}

// NewAnalyticsRepository construye el adaptador de agregaciones.
func NewAnalyticsRepository(db DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// Totals agregados globales del programa.
func (r *AnalyticsRepo) Totals() (*repository.DashboardTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE status = 'Activo'),
			COALESCE((SELECT SUM(assigned_points) FROM users), 0),
			COALESCE((SELECT SUM(redeemed_points) FROM users), 0),
			(SELECT COUNT(*) FROM redemptions WHERE status = 'Pendiente')`
	var t repository.DashboardTotals
	err := r.db.QueryRow(context.Background(), query).Scan(
		&t.ActiveUsers, &t.AssignedPoints, &t.RedeemedPoints, &t.PendingRedemptions,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard totals: %w", err)
	}
	return &t, nil
}

// TopCategories categorías con más huellas entregadas, de mayor a menor.
func (r *AnalyticsRepo) TopCategories(limit int) ([]*repository.CategoryTotal, error) {
	query := `
		SELECT category_code, description, SUM(points), COUNT(*)
		FROM badge_assignments
		WHERE kind = 'collaborator'
		GROUP BY category_code, description
		ORDER BY SUM(points) DESC
		LIMIT $1`
	rows, err := r.db.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	defer rows.Close()
	var list []*repository.CategoryTotal
	for rows.Next() {
		var c repository.CategoryTotal
		if err := rows.Scan(&c.Code, &c.Description, &c.Points, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
