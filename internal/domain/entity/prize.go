package entity

import "time"

// Prize premio del catálogo canjeable por huellas.
// IsActive se deriva: un premio con stock 0 queda inactivo.
type Prize struct {
	ID          string
	Code        string // único
	Description string
	ImagePath   string // ruta relativa servida como estático
	Cost        int    // huellas, siempre > 0
	Stock       int    // nunca negativo
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
