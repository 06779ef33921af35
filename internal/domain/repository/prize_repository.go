package repository

import "github.com/publicis/rewards-api/internal/domain/entity"

// PrizeRepository define el puerto de persistencia para Prize (DIP).
type PrizeRepository interface {
	Create(prize *entity.Prize) error
	GetByID(id string) (*entity.Prize, error)
	GetByCode(code string) (*entity.Prize, error)
	Update(prize *entity.Prize) error
	List(limit, offset int) ([]*entity.Prize, error)
	SetActive(id string, active bool) error
	// DecrementStock descuenta una unidad; devuelve ErrOutOfStock si stock == 0.
	// Si el stock llega a 0 el premio queda inactivo.
	DecrementStock(id string) (*entity.Prize, error)
	// RestoreStock repone una unidad y reactiva el premio en una sola sentencia.
	// Devuelve ErrNotFound si el premio ya no existe.
	RestoreStock(id string) error
	Delete(id string) error
}
