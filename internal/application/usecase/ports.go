package usecase

import (
	"context"

	"github.com/publicis/rewards-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para asignaciones y canjes:
// saldo, stock e historial se mueven juntos o no se mueven.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		assignmentRepo repository.AssignmentRepository,
		prizeRepo repository.PrizeRepository,
		redemptionRepo repository.RedemptionRepository,
	) error) error
}

// ImageStore guarda una imagen subida y devuelve la ruta pública calculada
// por el servidor (autoritativa sobre cualquier valor optimista del cliente).
type ImageStore interface {
	Save(filename string, data []byte) (publicPath string, err error)
	Remove(publicPath string) error
}
