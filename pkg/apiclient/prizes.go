package apiclient

import (
	"context"
	"fmt"
	"strconv"

	"github.com/publicis/rewards-api/internal/application/dto"
)

// ListPrizes lista el catálogo completo de premios.
func (c *Client) ListPrizes(ctx context.Context) ([]dto.PrizeResponse, error) {
	var out []dto.PrizeResponse
	err := c.do(ctx, "GET", "/prizes", nil, &out)
	return out, err
}

// GetPrize devuelve un premio por id.
func (c *Client) GetPrize(ctx context.Context, id string) (dto.PrizeResponse, error) {
	var out dto.PrizeResponse
	err := c.do(ctx, "GET", "/prizes/"+id, nil, &out)
	return out, err
}

// CreatePrize crea un premio. Envío multipart con campos en minúscula y la
// imagen opcional en imageFile; el servidor acepta ambas grafías.
func (c *Client) CreatePrize(ctx context.Context, in dto.CreatePrizeRequest, imageName string, imageData []byte) (dto.PrizeMessageResponse, error) {
	fields := map[string]string{
		"code":        in.Code,
		"description": in.Description,
		"cost":        strconv.Itoa(in.Cost),
		"stock":       strconv.Itoa(in.Stock),
		"isActive":    strconv.FormatBool(in.IsActive),
	}
	var out dto.PrizeMessageResponse
	err := c.doMultipart(ctx, "POST", "/prizes", fields, "imageFile", imageName, imageData, &out)
	return out, err
}

// UpdatePrize actualización parcial. Envío multipart con campos capitalizados
// e imagen opcional en ImageFile; campos ausentes conservan su valor.
func (c *Client) UpdatePrize(ctx context.Context, id string, in dto.UpdatePrizeRequest, imageName string, imageData []byte) (dto.PrizeMessageResponse, error) {
	fields := map[string]string{}
	if in.Description != nil {
		fields["Description"] = *in.Description
	}
	if in.Cost != nil {
		fields["Cost"] = strconv.Itoa(*in.Cost)
	}
	if in.Stock != nil {
		fields["Stock"] = strconv.Itoa(*in.Stock)
	}
	if in.IsActive != nil {
		fields["IsActive"] = strconv.FormatBool(*in.IsActive)
	}
	var out dto.PrizeMessageResponse
	err := c.doMultipart(ctx, "PUT", "/prizes/"+id, fields, "ImageFile", imageName, imageData, &out)
	return out, err
}

// TogglePrize alterna la disponibilidad de un premio.
func (c *Client) TogglePrize(ctx context.Context, id string) (dto.PrizeMessageResponse, error) {
	var out dto.PrizeMessageResponse
	err := c.do(ctx, "PUT", fmt.Sprintf("/prizes/%s/toggle", id), nil, &out)
	return out, err
}

// DeletePrize elimina un premio y su imagen.
func (c *Client) DeletePrize(ctx context.Context, id string) (dto.MessageResponse, error) {
	var out dto.MessageResponse
	err := c.do(ctx, "DELETE", "/prizes/"+id, nil, &out)
	return out, err
}
