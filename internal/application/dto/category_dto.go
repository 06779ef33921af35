package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría de insignia.
type CreateCategoryRequest struct {
	Code          string   `json:"code" validate:"required,max=20"`
	Description   string   `json:"description" validate:"required,max=300"`
	Points        int      `json:"points" validate:"required,gt=0"`
	IsAutomatic   bool     `json:"isAutomatic"`
	Subcategories []string `json:"subcategories" validate:"omitempty,dive,max=100"`
}

// UpdateCategoryRequest campos editables de una categoría. Sólo los presentes se aplican.
type UpdateCategoryRequest struct {
	Description   *string   `json:"description" validate:"omitempty,max=300"`
	Points        *int      `json:"points" validate:"omitempty,gt=0"`
	IsAutomatic   *bool     `json:"isAutomatic"`
	Subcategories *[]string `json:"subcategories" validate:"omitempty,dive,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Description   string    `json:"description"`
	Points        int       `json:"points"`
	IsAutomatic   bool      `json:"isAutomatic"`
	Subcategories []string  `json:"subcategories,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CategoryMessageResponse categoría + mensaje del servidor.
type CategoryMessageResponse struct {
	Category CategoryResponse `json:"category"`
	Message  string           `json:"message"`
}
