package entity

import "time"

// BadgeCategory categoría de insignia: motivo y valor en huellas de un reconocimiento.
// Las categorías automáticas (IsAutomatic) las otorga el sistema y se excluyen
// de los selectores de asignación manual.
type BadgeCategory struct {
	ID            string
	Code          string // único
	Description   string
	Points        int // siempre > 0
	IsAutomatic   bool
	Subcategories []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
