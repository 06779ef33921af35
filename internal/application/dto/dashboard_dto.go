package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs del programa de reconocimiento para el tablero de administración.
type DashboardSummaryDTO struct {
	ActiveUsers        int                  `json:"activeUsers"`
	AssignedPoints     int                  `json:"assignedPoints"`
	RedeemedPoints     int                  `json:"redeemedPoints"`
	PendingRedemptions int                  `json:"pendingRedemptions"`
	TopCategories      []CategoryTotalDTO   `json:"topCategories"`
	RecentRedemptions  []RedemptionResponse `json:"recentRedemptions"`
}

// CategoryTotalDTO agregado de huellas entregadas por categoría.
type CategoryTotalDTO struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Count       int    `json:"count"`
}

// EmployeeNodeDTO nodo del árbol de equipo (manager → reportes, recursivo).
type EmployeeNodeDTO struct {
	ID             string            `json:"id"`
	EmployeeNumber string            `json:"employeeNumber"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	ActiveRole     string            `json:"activeRole"`
	ProfilePicture string            `json:"profilePicture,omitempty"`
	Reports        []EmployeeNodeDTO `json:"reports,omitempty"`
}
