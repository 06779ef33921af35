package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/domain/entity"
)

// AssignmentHandler asignaciones de huellas en sus dos variantes.
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler de asignaciones.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// ListManagerGrants asignaciones admin → manager.
func (h *AssignmentHandler) ListManagerGrants(c *fiber.Ctx) error {
	return h.listByKind(c, entity.AssignmentManager)
}

// ListCollaboratorGrants asignaciones manager → colaborador.
func (h *AssignmentHandler) ListCollaboratorGrants(c *fiber.Ctx) error {
	return h.listByKind(c, entity.AssignmentCollaborator)
}

func (h *AssignmentHandler) listByKind(c *fiber.Ctx, kind string) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.ListByKind(kind, page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// ListMine asignaciones recibidas por el usuario autenticado.
func (h *AssignmentHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.ListByRecipient(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// CreateManagerGrant godoc
// @Summary      Asignar huellas a un manager (solo Administrador)
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateManagerGrantRequest  true  "recipientId, points"
// @Success      201   {object}  dto.AssignmentMessageResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/assignments/managers [post]
func (h *AssignmentHandler) CreateManagerGrant(c *fiber.Ctx) error {
	var in dto.CreateManagerGrantRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CreateManagerGrant(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateCollaboratorGrant godoc
// @Summary      Reconocer a un colaborador con una categoría (Manager/Supervisor)
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCollaboratorGrantRequest  true  "recipientId, categoryCode, comment"
// @Success      201   {object}  dto.AssignmentMessageResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/assignments/collaborators [post]
func (h *AssignmentHandler) CreateCollaboratorGrant(c *fiber.Ctx) error {
	var in dto.CreateCollaboratorGrantRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.CreateCollaboratorGrant(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
