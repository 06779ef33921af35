package entity

import "time"

// Tipos de asignación de huellas.
const (
	// AssignmentManager admin → manager: cantidad fija, sin categoría.
	AssignmentManager = "manager"
	// AssignmentCollaborator manager → colaborador: ligada a una categoría
	// no automática y con comentario obligatorio.
	AssignmentCollaborator = "collaborator"
)

// BadgeAssignment registro de una entrega de huellas de un actor a un receptor.
type BadgeAssignment struct {
	ID            string
	Kind          string // manager | collaborator
	AssignerID    string
	AssignerName  string
	RecipientID   string
	RecipientName string
	Points        int
	CategoryCode  string // vacío en asignaciones a managers
	Description   string // descripción de la categoría en el momento de asignar
	Comment       string
	CreatedAt     time.Time
}
