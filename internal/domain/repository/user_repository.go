package repository

import "github.com/publicis/rewards-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByIDForUpdate bloquea la fila del usuario hasta el fin de la
	// transacción. Serializa las operaciones que leen saldo y luego lo mueven.
	GetByIDForUpdate(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByRole(role string, limit, offset int) ([]*entity.User, error)
	Delete(id string) error
	// SetRoles reemplaza el conjunto de roles del usuario.
	SetRoles(userID string, roles []entity.Role) error
	SetStatus(userID, status string) error
	SetProfilePicture(userID, path string) error
	// AdjustPoints suma deltas a los contadores de huellas (pueden ser negativos).
	AdjustPoints(userID string, assignedDelta, redeemedDelta int) error
}
