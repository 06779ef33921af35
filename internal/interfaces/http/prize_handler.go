package http

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/usecase"
)

// PrizeHandler catálogo de premios. Create/Update llegan como multipart.
// El cliente original envía los nombres de campo con distinta capitalización
// entre creación (code, cost...) y actualización (Code, Cost...); se aceptan
// ambas para mantener compatibilidad.
type PrizeHandler struct {
	uc *usecase.PrizeUseCase
}

// NewPrizeHandler construye el handler de premios.
func NewPrizeHandler(uc *usecase.PrizeUseCase) *PrizeHandler {
	return &PrizeHandler{uc: uc}
}

// formValue devuelve el primer valor presente entre las variantes del campo.
func formValue(c *fiber.Ctx, names ...string) string {
	for _, n := range names {
		if v := c.FormValue(n); v != "" {
			return v
		}
	}
	return ""
}

// formImage lee el archivo de imagen bajo cualquiera de los nombres dados.
func formImage(c *fiber.Ctx, names ...string) (filename string, data []byte, err error) {
	for _, n := range names {
		fh, ferr := c.FormFile(n)
		if ferr != nil {
			continue
		}
		f, ferr := fh.Open()
		if ferr != nil {
			return "", nil, ferr
		}
		defer f.Close()
		b, ferr := io.ReadAll(f)
		if ferr != nil {
			return "", nil, ferr
		}
		return fh.Filename, b, nil
	}
	return "", nil, nil
}

// List lista premios.
func (h *PrizeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	prizes, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(prizes)
}

// GetByID devuelve un premio.
func (h *PrizeHandler) GetByID(c *fiber.Ctx) error {
	prize, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(prize)
}

// Create recibe multipart: code, description, cost, stock, isActive, imageFile.
func (h *PrizeHandler) Create(c *fiber.Ctx) error {
	cost, _ := strconv.Atoi(formValue(c, "cost", "Cost"))
	stock, _ := strconv.Atoi(formValue(c, "stock", "Stock"))
	active, _ := strconv.ParseBool(formValue(c, "isActive", "IsActive"))
	in := dto.CreatePrizeRequest{
		Code:        formValue(c, "code", "Code"),
		Description: formValue(c, "description", "Description"),
		Cost:        cost,
		Stock:       stock,
		IsActive:    active,
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	name, data, err := formImage(c, "imageFile", "ImageFile")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.Create(in, name, data)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update recibe multipart con los campos a cambiar (semántica de merge).
func (h *PrizeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePrizeRequest
	if v := formValue(c, "description", "Description"); v != "" {
		in.Description = &v
	}
	if v := formValue(c, "cost", "Cost"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cost debe ser numérico"})
		}
		in.Cost = &n
	}
	if v := formValue(c, "stock", "Stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "stock debe ser numérico"})
		}
		in.Stock = &n
	}
	if v := formValue(c, "isActive", "IsActive"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "isActive debe ser booleano"})
		}
		in.IsActive = &b
	}
	name, data, err := formImage(c, "imageFile", "ImageFile")
	if err != nil {
		return respondDomainError(c, err)
	}
	out, err := h.uc.Update(c.Params("id"), in, name, data)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ToggleActive alterna el estado activo de un premio.
func (h *PrizeHandler) ToggleActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un premio.
func (h *PrizeHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
