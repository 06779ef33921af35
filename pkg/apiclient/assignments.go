package apiclient

import (
	"context"

	"github.com/publicis/rewards-api/internal/application/dto"
)

// ListManagerGrants historial de asignaciones admin → manager.
func (c *Client) ListManagerGrants(ctx context.Context) ([]dto.AssignmentResponse, error) {
	var out []dto.AssignmentResponse
	err := c.do(ctx, "GET", "/assignments/managers", nil, &out)
	return out, err
}

// CreateManagerGrant asigna huellas de presupuesto a un manager.
func (c *Client) CreateManagerGrant(ctx context.Context, in dto.CreateManagerGrantRequest) (dto.AssignmentMessageResponse, error) {
	var out dto.AssignmentMessageResponse
	err := c.do(ctx, "POST", "/assignments/managers", in, &out)
	return out, err
}

// ListCollaboratorGrants historial de reconocimientos manager → colaborador.
func (c *Client) ListCollaboratorGrants(ctx context.Context) ([]dto.AssignmentResponse, error) {
	var out []dto.AssignmentResponse
	err := c.do(ctx, "GET", "/assignments/collaborators", nil, &out)
	return out, err
}

// CreateCollaboratorGrant envía un reconocimiento con categoría y comentario.
func (c *Client) CreateCollaboratorGrant(ctx context.Context, in dto.CreateCollaboratorGrantRequest) (dto.AssignmentMessageResponse, error) {
	var out dto.AssignmentMessageResponse
	err := c.do(ctx, "POST", "/assignments/collaborators", in, &out)
	return out, err
}

// ListMyAssignments reconocimientos recibidos por el usuario autenticado.
func (c *Client) ListMyAssignments(ctx context.Context) ([]dto.AssignmentResponse, error) {
	var out []dto.AssignmentResponse
	err := c.do(ctx, "GET", "/assignments/mine", nil, &out)
	return out, err
}
