package dto

import "time"

// CreatePrizeRequest entrada para crear un premio. La imagen llega aparte
// como multipart y el servidor calcula ImagePath.
type CreatePrizeRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Description string `json:"description" validate:"required,max=300"`
	Cost        int    `json:"cost" validate:"required,gt=0"`
	Stock       int    `json:"stock" validate:"min=0"`
	IsActive    bool   `json:"isActive"`
}

// UpdatePrizeRequest campos editables de un premio. Sólo los presentes se aplican.
type UpdatePrizeRequest struct {
	Description *string `json:"description" validate:"omitempty,max=300"`
	Cost        *int    `json:"cost" validate:"omitempty,gt=0"`
	Stock       *int    `json:"stock" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"isActive"`
}

// PrizeResponse salida de un premio.
type PrizeResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	ImagePath   string    `json:"imagePath,omitempty"`
	Cost        int       `json:"cost"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PrizeMessageResponse premio + mensaje del servidor. ImagePath lo calcula el
// servidor y es autoritativo sobre cualquier valor optimista del cliente.
type PrizeMessageResponse struct {
	Prize   PrizeResponse `json:"prize"`
	Message string        `json:"message"`
}
