package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/mapper"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

// RedemptionUseCase canje de huellas por premios e historial de canjes.
// El canje es atómico: stock, saldo del usuario e historial se mueven juntos.
type RedemptionUseCase struct {
	tx   TxRunner
	repo repository.RedemptionRepository
}

// NewRedemptionUseCase construye el caso de uso.
func NewRedemptionUseCase(tx TxRunner, repo repository.RedemptionRepository) *RedemptionUseCase {
	return &RedemptionUseCase{tx: tx, repo: repo}
}

// List historial completo (administración).
func (uc *RedemptionUseCase) List(limit, offset int) ([]dto.RedemptionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RedemptionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, mapper.RedemptionToResponse(r))
	}
	return out, nil
}

// ListByUser historial de canjes de un usuario.
func (uc *RedemptionUseCase) ListByUser(userID string, limit, offset int) ([]dto.RedemptionResponse, error) {
	list, err := uc.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RedemptionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, mapper.RedemptionToResponse(r))
	}
	return out, nil
}

// Redeem canjea un premio por el usuario autenticado. Dentro de la transacción,
// con la fila del usuario bloqueada: verifica saldo, descuenta una unidad de
// stock (el premio queda inactivo al llegar a 0), suma huellas canjeadas y
// registra el historial en Pendiente.
func (uc *RedemptionUseCase) Redeem(ctx context.Context, userID string, in dto.RedeemRequest) (*dto.RedemptionMessageResponse, error) {
	var created *entity.Redemption
	err := uc.tx.Run(ctx, func(
		userRepo repository.UserRepository,
		_ repository.AssignmentRepository,
		prizeRepo repository.PrizeRepository,
		redemptionRepo repository.RedemptionRepository,
	) error {
		user, err := userRepo.GetByIDForUpdate(userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		prize, err := prizeRepo.GetByID(in.PrizeID)
		if err != nil {
			return err
		}
		if prize == nil {
			return domain.ErrNotFound
		}
		if !prize.IsActive || prize.Stock == 0 {
			return domain.ErrOutOfStock
		}
		if user.AvailablePoints() < prize.Cost {
			return domain.ErrInsufficientPoints
		}
		updated, err := prizeRepo.DecrementStock(prize.ID)
		if err != nil {
			return err
		}
		if err := userRepo.AdjustPoints(user.ID, 0, prize.Cost); err != nil {
			return err
		}
		created = &entity.Redemption{
			ID:               uuid.New().String(),
			UserID:           user.ID,
			UserName:         user.Name,
			PrizeID:          updated.ID,
			PrizeCode:        updated.Code,
			PrizeDescription: updated.Description,
			Points:           updated.Cost,
			Status:           entity.RedemptionPendiente,
			RedeemedAt:       time.Now(),
		}
		return redemptionRepo.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RedemptionMessageResponse{
		Redemption: mapper.RedemptionToResponse(created),
		Message:    "Canje registrado correctamente",
	}, nil
}

// ChangeStatus transiciona Pendiente → Entregado|Anulado estampando auditoría.
// Anular devuelve las huellas al usuario y repone la unidad de stock.
func (uc *RedemptionUseCase) ChangeStatus(ctx context.Context, id string, changedBy string, in dto.ChangeRedemptionStatusRequest) (*dto.RedemptionMessageResponse, error) {
	if in.Status != entity.RedemptionEntregado && in.Status != entity.RedemptionAnulado {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Redemption
	err := uc.tx.Run(ctx, func(
		userRepo repository.UserRepository,
		_ repository.AssignmentRepository,
		prizeRepo repository.PrizeRepository,
		redemptionRepo repository.RedemptionRepository,
	) error {
		var err error
		updated, err = redemptionRepo.UpdateStatus(id, in.Status, changedBy)
		if err != nil {
			return err
		}
		if in.Status != entity.RedemptionAnulado {
			return nil
		}
		// Anulación: reintegro de huellas y de stock. Si el premio ya no
		// existe, la transacción completa se revierte.
		if err := userRepo.AdjustPoints(updated.UserID, 0, -updated.Points); err != nil {
			return err
		}
		return prizeRepo.RestoreStock(updated.PrizeID)
	})
	if err != nil {
		return nil, err
	}
	msg := "Canje marcado como entregado"
	if in.Status == entity.RedemptionAnulado {
		msg = "Canje anulado correctamente"
	}
	return &dto.RedemptionMessageResponse{
		Redemption: mapper.RedemptionToResponse(updated),
		Message:    msg,
	}, nil
}
