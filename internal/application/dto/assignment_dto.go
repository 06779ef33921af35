package dto

import "time"

// CreateManagerGrantRequest asignación admin → manager: cantidad fija, sin categoría.
type CreateManagerGrantRequest struct {
	RecipientID string `json:"recipientId" validate:"required,uuid"`
	Points      int    `json:"points" validate:"required,gt=0"`
}

// CreateCollaboratorGrantRequest asignación manager → colaborador:
// categoría no automática y comentario obligatorio.
type CreateCollaboratorGrantRequest struct {
	RecipientID  string `json:"recipientId" validate:"required,uuid"`
	CategoryCode string `json:"categoryCode" validate:"required"`
	Comment      string `json:"comment" validate:"required,min=1,max=500"`
}

// AssignmentResponse salida de una asignación de huellas.
type AssignmentResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	AssignerID    string    `json:"assignerId"`
	AssignerName  string    `json:"assignerName"`
	RecipientID   string    `json:"recipientId"`
	RecipientName string    `json:"recipientName"`
	Points        int       `json:"points"`
	CategoryCode  string    `json:"categoryCode,omitempty"`
	Description   string    `json:"description,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AssignmentMessageResponse asignación + mensaje del servidor.
type AssignmentMessageResponse struct {
	Assignment AssignmentResponse `json:"assignment"`
	Message    string             `json:"message"`
}
