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

// AssignmentUseCase reglas de negocio para asignaciones de huellas.
// Dos variantes: admin → manager (cantidad fija, sin categoría) y
// manager → colaborador (categoría no automática, comentario obligatorio).
type AssignmentUseCase struct {
	tx           TxRunner
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	assignRepo   repository.AssignmentRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(tx TxRunner, categoryRepo repository.CategoryRepository, userRepo repository.UserRepository, assignRepo repository.AssignmentRepository) *AssignmentUseCase {
	return &AssignmentUseCase{tx: tx, categoryRepo: categoryRepo, userRepo: userRepo, assignRepo: assignRepo}
}

// ListByKind lista asignaciones de un tipo (manager | collaborator).
func (uc *AssignmentUseCase) ListByKind(kind string, limit, offset int) ([]dto.AssignmentResponse, error) {
	if kind != entity.AssignmentManager && kind != entity.AssignmentCollaborator {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.assignRepo.ListByKind(kind, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, mapper.AssignmentToResponse(a))
	}
	return out, nil
}

// ListByRecipient lista asignaciones recibidas por un usuario.
func (uc *AssignmentUseCase) ListByRecipient(recipientID string, limit, offset int) ([]dto.AssignmentResponse, error) {
	list, err := uc.assignRepo.ListByRecipient(recipientID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, mapper.AssignmentToResponse(a))
	}
	return out, nil
}

// CreateManagerGrant entrega huellas de un administrador a un manager.
// El receptor debe poseer el rol Manager. Atómico: registro + saldo.
func (uc *AssignmentUseCase) CreateManagerGrant(ctx context.Context, assignerID string, in dto.CreateManagerGrantRequest) (*dto.AssignmentMessageResponse, error) {
	assigner, err := uc.userRepo.GetByID(assignerID)
	if err != nil {
		return nil, err
	}
	if assigner == nil {
		return nil, domain.ErrUserNotFound
	}
	var created *entity.BadgeAssignment
	err = uc.tx.Run(ctx, func(
		userRepo repository.UserRepository,
		assignmentRepo repository.AssignmentRepository,
		_ repository.PrizeRepository,
		_ repository.RedemptionRepository,
	) error {
		recipient, err := userRepo.GetByID(in.RecipientID)
		if err != nil {
			return err
		}
		if recipient == nil {
			return domain.ErrUserNotFound
		}
		if !recipient.HasRole(entity.RoleManager) {
			return domain.ErrForbidden
		}
		created = &entity.BadgeAssignment{
			ID:            uuid.New().String(),
			Kind:          entity.AssignmentManager,
			AssignerID:    assigner.ID,
			AssignerName:  assigner.Name,
			RecipientID:   recipient.ID,
			RecipientName: recipient.Name,
			Points:        in.Points,
			CreatedAt:     time.Now(),
		}
		if err := assignmentRepo.Create(created); err != nil {
			return err
		}
		return userRepo.AdjustPoints(recipient.ID, in.Points, 0)
	})
	if err != nil {
		return nil, err
	}
	return &dto.AssignmentMessageResponse{
		Assignment: mapper.AssignmentToResponse(created),
		Message:    "Huellas asignadas correctamente",
	}, nil
}

// CreateCollaboratorGrant entrega huellas de un manager a un colaborador,
// ligadas a una categoría no automática. El total entregado por el manager no
// puede superar su saldo disponible; la comprobación corre dentro de la
// transacción con la fila del asignador bloqueada, para que dos asignaciones
// simultáneas no lo sobregiren.
func (uc *AssignmentUseCase) CreateCollaboratorGrant(ctx context.Context, assignerID string, in dto.CreateCollaboratorGrantRequest) (*dto.AssignmentMessageResponse, error) {
	if in.Comment == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByCode(in.CategoryCode)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.IsAutomatic {
		return nil, domain.ErrInvalidInput
	}
	var created *entity.BadgeAssignment
	err = uc.tx.Run(ctx, func(
		userRepo repository.UserRepository,
		assignmentRepo repository.AssignmentRepository,
		_ repository.PrizeRepository,
		_ repository.RedemptionRepository,
	) error {
		assigner, err := userRepo.GetByIDForUpdate(assignerID)
		if err != nil {
			return err
		}
		if assigner == nil {
			return domain.ErrUserNotFound
		}
		recipient, err := userRepo.GetByID(in.RecipientID)
		if err != nil {
			return err
		}
		if recipient == nil {
			return domain.ErrUserNotFound
		}
		granted, err := assignmentRepo.SumByAssigner(assigner.ID, entity.AssignmentCollaborator)
		if err != nil {
			return err
		}
		if granted+category.Points > assigner.AvailablePoints() {
			return domain.ErrInsufficientPoints
		}
		created = &entity.BadgeAssignment{
			ID:            uuid.New().String(),
			Kind:          entity.AssignmentCollaborator,
			AssignerID:    assigner.ID,
			AssignerName:  assigner.Name,
			RecipientID:   recipient.ID,
			RecipientName: recipient.Name,
			Points:        category.Points,
			CategoryCode:  category.Code,
			Description:   category.Description,
			Comment:       in.Comment,
			CreatedAt:     time.Now(),
		}
		if err := assignmentRepo.Create(created); err != nil {
			return err
		}
		return userRepo.AdjustPoints(recipient.ID, category.Points, 0)
	})
	if err != nil {
		return nil, err
	}
	return &dto.AssignmentMessageResponse{
		Assignment: mapper.AssignmentToResponse(created),
		Message:    "Reconocimiento enviado correctamente",
	}, nil
}
