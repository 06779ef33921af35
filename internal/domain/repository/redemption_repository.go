package repository

import "github.com/publicis/rewards-api/internal/domain/entity"

// RedemptionRepository define el puerto de persistencia para Redemption (DIP).
type RedemptionRepository interface {
	Create(redemption *entity.Redemption) error
	GetByID(id string) (*entity.Redemption, error)
	List(limit, offset int) ([]*entity.Redemption, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Redemption, error)
	// UpdateStatus transiciona Pendiente → Entregado|Anulado estampando auditoría.
	// Devuelve ErrRedemptionClosed si el registro ya salió de Pendiente.
	UpdateStatus(id, status, changedBy string) (*entity.Redemption, error)
}
