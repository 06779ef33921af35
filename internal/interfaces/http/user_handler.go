package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/usecase"
)

// UserHandler administración de usuarios: altas, roles, estado de cuenta y foto.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	users, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(users)
}

// GetByID devuelve un usuario.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// Me devuelve el usuario autenticado (para rehidratar la sesión del cliente).
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// Create alta directa por administrador.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica un parche de campos presentes.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// AssignRoles reemplaza el conjunto de roles de un usuario.
func (h *UserHandler) AssignRoles(c *fiber.Ctx) error {
	var in dto.AssignRolesRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.AssignRoles(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ToggleAccount alterna Activo ↔ Inactivo.
func (h *UserHandler) ToggleAccount(c *fiber.Ctx) error {
	out, err := h.uc.ToggleAccount(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfilePicture recibe multipart con el campo "file".
func (h *UserHandler) UpdateProfilePicture(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere el archivo 'file'"})
	}
	f, err := fh.Open()
	if err != nil {
		return respondDomainError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.UpdateProfilePicture(c.Params("id"), fh.Filename, data)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Balance saldo de huellas de un usuario.
func (h *UserHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.Balance(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un usuario.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
