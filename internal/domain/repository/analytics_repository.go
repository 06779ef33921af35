package repository

// CategoryTotal agregado de huellas entregadas por categoría.
type CategoryTotal struct {
	Code        string
	Description string
	Points      int
	Count       int
}

// DashboardTotals agregados globales para el tablero de administración.
type DashboardTotals struct {
	ActiveUsers        int
	AssignedPoints     int
	RedeemedPoints     int
	PendingRedemptions int
}

// AnalyticsRepository consultas de agregación para los tableros.
type AnalyticsRepository interface {
	Totals() (*DashboardTotals, error)
	TopCategories(limit int) ([]*CategoryTotal, error)
}
