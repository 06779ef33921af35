package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	db DB
}

// NewAssignmentRepository construye el adaptador de persistencia para asignaciones.
func NewAssignmentRepository(db DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

const assignmentColumns = `id, kind, assigner_id, assigner_name, recipient_id, recipient_name,
	points, category_code, description, comment, created_at`

func scanAssignment(row pgx.Row) (*entity.BadgeAssignment, error) {
	var a entity.BadgeAssignment
	err := row.Scan(
		&a.ID, &a.Kind, &a.AssignerID, &a.AssignerName, &a.RecipientID, &a.RecipientName,
		&a.Points, &a.CategoryCode, &a.Description, &a.Comment, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una nueva asignación.
func (r *AssignmentRepo) Create(assignment *entity.BadgeAssignment) error {
	query := `
		INSERT INTO badge_assignments (id, kind, assigner_id, assigner_name, recipient_id,
			recipient_name, points, category_code, description, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		assignment.ID, assignment.Kind, assignment.AssignerID, assignment.AssignerName,
		assignment.RecipientID, assignment.RecipientName, assignment.Points,
		assignment.CategoryCode, assignment.Description, assignment.Comment, assignment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *AssignmentRepo) GetByID(id string) (*entity.BadgeAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM badge_assignments WHERE id = $1`
	a, err := scanAssignment(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment by id: %w", err)
	}
	return a, nil
}

// ListByKind lista asignaciones de un tipo con paginación.
func (r *AssignmentRepo) ListByKind(kind string, limit, offset int) ([]*entity.BadgeAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM badge_assignments
		WHERE kind = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, kind, limit, offset)
}

// ListByRecipient lista asignaciones recibidas por un usuario.
func (r *AssignmentRepo) ListByRecipient(recipientID string, limit, offset int) ([]*entity.BadgeAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM badge_assignments
		WHERE recipient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, recipientID, limit, offset)
}

func (r *AssignmentRepo) list(query string, args ...any) ([]*entity.BadgeAssignment, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []*entity.BadgeAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// SumByAssigner total de huellas entregadas por un asignador en un tipo dado.
func (r *AssignmentRepo) SumByAssigner(assignerID, kind string) (int, error) {
	var total int
	err := r.db.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(points), 0) FROM badge_assignments WHERE assigner_id = $1 AND kind = $2`,
		assignerID, kind,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum assignments: %w", err)
	}
	return total, nil
}

// Delete elimina una asignación por ID.
func (r *AssignmentRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM badge_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}
