package repository

import "github.com/publicis/rewards-api/internal/domain/entity"

// AssignmentRepository define el puerto de persistencia para BadgeAssignment (DIP).
type AssignmentRepository interface {
	Create(assignment *entity.BadgeAssignment) error
	GetByID(id string) (*entity.BadgeAssignment, error)
	// ListByKind lista asignaciones de un tipo (manager | collaborator).
	ListByKind(kind string, limit, offset int) ([]*entity.BadgeAssignment, error)
	ListByRecipient(recipientID string, limit, offset int) ([]*entity.BadgeAssignment, error)
	// SumByAssigner total de huellas entregadas por un asignador en un tipo dado.
	SumByAssigner(assignerID, kind string) (int, error)
	Delete(id string) error
}
