package postgres

import (
	"context"
	"fmt"

	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo vista de solo lectura sobre la jerarquía manager → reportes.
type EmployeeRepo struct {
	db DB
}

// NewEmployeeRepository construye el adaptador de jerarquía de empleados.
func NewEmployeeRepository(db DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// ListByManager reportes directos de un manager (un nivel).
func (r *EmployeeRepo) ListByManager(managerID string) ([]*entity.EmployeeNode, error) {
	query := `
		SELECT id, employee_number, name, email, active_role, profile_picture
		FROM users WHERE manager_id = $1 ORDER BY name`
	rows, err := r.db.Query(context.Background(), query, managerID)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()
	var list []*entity.EmployeeNode
	for rows.Next() {
		var n entity.EmployeeNode
		if err := rows.Scan(&n.ID, &n.EmployeeNumber, &n.Name, &n.Email, &n.ActiveRole, &n.ProfilePicture); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
