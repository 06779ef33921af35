package repository

import "github.com/publicis/rewards-api/internal/domain/entity"

// EmployeeRepository consultas de solo lectura sobre la jerarquía de empleados.
type EmployeeRepository interface {
	// ListByManager reportes directos de un manager (un nivel).
	ListByManager(managerID string) ([]*entity.EmployeeNode, error)
}
