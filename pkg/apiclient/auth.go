package apiclient

import (
	"context"

	"github.com/publicis/rewards-api/internal/application/dto"
)

// Register da de alta a un usuario (queda Pendiente hasta activación por admin).
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (dto.UserResponse, error) {
	var out dto.UserResponse
	err := c.do(ctx, "POST", "/auth/register", in, &out)
	return out, err
}

// Login autentica y devuelve token + usuario.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, "POST", "/auth/login", in, &out)
	return out, err
}

// SwitchRole cambia el rol activo; devuelve un token nuevo con ese rol.
func (c *Client) SwitchRole(ctx context.Context, role string) (dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, "POST", "/auth/switch-role", dto.SwitchRoleRequest{Role: role}, &out)
	return out, err
}
