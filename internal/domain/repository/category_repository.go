package repository

import "github.com/publicis/rewards-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para BadgeCategory (DIP).
type CategoryRepository interface {
	Create(category *entity.BadgeCategory) error
	GetByID(id string) (*entity.BadgeCategory, error)
	GetByCode(code string) (*entity.BadgeCategory, error)
	Update(category *entity.BadgeCategory) error
	List(limit, offset int) ([]*entity.BadgeCategory, error)
	// ListManual lista solo categorías no automáticas (selectores de asignación).
	ListManual() ([]*entity.BadgeCategory, error)
	Delete(id string) error
}
