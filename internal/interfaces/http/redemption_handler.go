package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/usecase"
)

// RedemptionHandler canje de premios e historial de canjes.
type RedemptionHandler struct {
	uc *usecase.RedemptionUseCase
}

// NewRedemptionHandler construye el handler de canjes.
func NewRedemptionHandler(uc *usecase.RedemptionUseCase) *RedemptionHandler {
	return &RedemptionHandler{uc: uc}
}

// List historial completo (administración).
func (h *RedemptionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// ListMine historial del usuario autenticado.
func (h *RedemptionHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	list, err := h.uc.ListByUser(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(list)
}

// Redeem godoc
// @Summary      Canjear un premio por huellas
// @Tags         redemptions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RedeemRequest  true  "prizeId"
// @Success      201   {object}  dto.RedemptionMessageResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/redemptions [post]
func (h *RedemptionHandler) Redeem(c *fiber.Ctx) error {
	var in dto.RedeemRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Redeem(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChangeStatus transiciona Pendiente → Entregado|Anulado (administración).
func (h *RedemptionHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeRedemptionStatusRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.ChangeStatus(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
