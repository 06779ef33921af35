package apiclient

import (
	"context"
	"fmt"

	"github.com/publicis/rewards-api/internal/application/dto"
)

// Me devuelve el perfil del usuario autenticado.
func (c *Client) Me(ctx context.Context) (dto.UserResponse, error) {
	var out dto.UserResponse
	err := c.do(ctx, "GET", "/users/me", nil, &out)
	return out, err
}

// ListUsers lista todos los usuarios (solo admin).
func (c *Client) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	err := c.do(ctx, "GET", "/users", nil, &out)
	return out, err
}

// GetUser devuelve un usuario por id.
func (c *Client) GetUser(ctx context.Context, id string) (dto.UserResponse, error) {
	var out dto.UserResponse
	err := c.do(ctx, "GET", "/users/"+id, nil, &out)
	return out, err
}

// CreateUser alta directa por admin (nace Activo).
func (c *Client) CreateUser(ctx context.Context, in dto.CreateUserRequest) (dto.UserMessageResponse, error) {
	var out dto.UserMessageResponse
	err := c.do(ctx, "POST", "/users", in, &out)
	return out, err
}

// UpdateUser actualización parcial; solo los campos presentes se aplican.
func (c *Client) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (dto.UserMessageResponse, error) {
	var out dto.UserMessageResponse
	err := c.do(ctx, "PUT", "/users/"+id, in, &out)
	return out, err
}

// AssignRoles reemplaza el conjunto de roles del usuario.
func (c *Client) AssignRoles(ctx context.Context, id string, roles []string) (dto.UserMessageResponse, error) {
	var out dto.UserMessageResponse
	err := c.do(ctx, "PUT", fmt.Sprintf("/users/%s/roles", id), dto.AssignRolesRequest{Roles: roles}, &out)
	return out, err
}

// ToggleAccount alterna Activo/Inactivo (Pendiente pasa a Activo).
func (c *Client) ToggleAccount(ctx context.Context, id string) (dto.UserMessageResponse, error) {
	var out dto.UserMessageResponse
	err := c.do(ctx, "PUT", fmt.Sprintf("/users/%s/toggle", id), nil, &out)
	return out, err
}

// UpdateProfilePicture sube la foto de perfil. El campo multipart es "file";
// el servidor devuelve la ruta pública definitiva.
func (c *Client) UpdateProfilePicture(ctx context.Context, id, fileName string, fileData []byte) (dto.UserMessageResponse, error) {
	var out dto.UserMessageResponse
	err := c.doMultipart(ctx, "PUT", fmt.Sprintf("/users/%s/profile-picture", id), nil, "file", fileName, fileData, &out)
	return out, err
}

// Balance devuelve el saldo de huellas de un usuario.
func (c *Client) Balance(ctx context.Context, id string) (dto.BalanceResponse, error) {
	var out dto.BalanceResponse
	err := c.do(ctx, "GET", fmt.Sprintf("/users/%s/balance", id), nil, &out)
	return out, err
}

// DeleteUser elimina un usuario (solo admin).
func (c *Client) DeleteUser(ctx context.Context, id string) (dto.MessageResponse, error) {
	var out dto.MessageResponse
	err := c.do(ctx, "DELETE", "/users/"+id, nil, &out)
	return out, err
}
