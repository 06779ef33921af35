package apiclient

import (
	"context"

	"github.com/publicis/rewards-api/internal/application/dto"
)

// ListCategories lista todas las categorías de insignia.
func (c *Client) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	err := c.do(ctx, "GET", "/categories", nil, &out)
	return out, err
}

// ListManualCategories lista solo las categorías asignables a mano (no automáticas).
func (c *Client) ListManualCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	err := c.do(ctx, "GET", "/categories/manual", nil, &out)
	return out, err
}

// CreateCategory crea una categoría de insignia (solo admin).
func (c *Client) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (dto.CategoryMessageResponse, error) {
	var out dto.CategoryMessageResponse
	err := c.do(ctx, "POST", "/categories", in, &out)
	return out, err
}

// UpdateCategory actualización parcial de una categoría.
func (c *Client) UpdateCategory(ctx context.Context, id string, in dto.UpdateCategoryRequest) (dto.CategoryMessageResponse, error) {
	var out dto.CategoryMessageResponse
	err := c.do(ctx, "PUT", "/categories/"+id, in, &out)
	return out, err
}

// DeleteCategory elimina una categoría.
func (c *Client) DeleteCategory(ctx context.Context, id string) (dto.MessageResponse, error) {
	var out dto.MessageResponse
	err := c.do(ctx, "DELETE", "/categories/"+id, nil, &out)
	return out, err
}
