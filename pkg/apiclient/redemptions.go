package apiclient

import (
	"context"
	"fmt"

	"github.com/publicis/rewards-api/internal/application/dto"
)

// Redeem canjea un premio por el usuario autenticado; nace en estado Pendiente.
func (c *Client) Redeem(ctx context.Context, prizeID string) (dto.RedemptionMessageResponse, error) {
	var out dto.RedemptionMessageResponse
	err := c.do(ctx, "POST", "/redemptions", dto.RedeemRequest{PrizeID: prizeID}, &out)
	return out, err
}

// ListRedemptions historial completo de canjes (solo admin).
func (c *Client) ListRedemptions(ctx context.Context) ([]dto.RedemptionResponse, error) {
	var out []dto.RedemptionResponse
	err := c.do(ctx, "GET", "/redemptions", nil, &out)
	return out, err
}

// ListMyRedemptions canjes del usuario autenticado.
func (c *Client) ListMyRedemptions(ctx context.Context) ([]dto.RedemptionResponse, error) {
	var out []dto.RedemptionResponse
	err := c.do(ctx, "GET", "/redemptions/mine", nil, &out)
	return out, err
}

// ChangeRedemptionStatus transición Pendiente → Entregado|Anulado.
func (c *Client) ChangeRedemptionStatus(ctx context.Context, id, status string) (dto.RedemptionMessageResponse, error) {
	var out dto.RedemptionMessageResponse
	err := c.do(ctx, "PUT", fmt.Sprintf("/redemptions/%s/status", id), dto.ChangeRedemptionStatusRequest{Status: status}, &out)
	return out, err
}
