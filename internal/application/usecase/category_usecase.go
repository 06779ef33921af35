package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/mapper"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

// CategoryUseCase reglas de negocio para categorías de insignia.
// Invariante central: Points siempre > 0.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso con el puerto de persistencia.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List lista categorías con paginación.
func (uc *CategoryUseCase) List(limit, offset int) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, mapper.CategoryToResponse(c))
	}
	return out, nil
}

// ListManual lista categorías no automáticas, para los selectores de asignación.
func (uc *CategoryUseCase) ListManual() ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.ListManual()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, mapper.CategoryToResponse(c))
	}
	return out, nil
}

// Create crea una categoría. El código es único y los puntos deben ser positivos.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryMessageResponse, error) {
	if in.Points <= 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrCodeAlreadyExists
	}
	now := time.Now()
	category := &entity.BadgeCategory{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Description:   in.Description,
		Points:        in.Points,
		IsAutomatic:   in.IsAutomatic,
		Subcategories: in.Subcategories,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryMessageResponse{
		Category: mapper.CategoryToResponse(category),
		Message:  "Categoría creada correctamente",
	}, nil
}

// Update aplica solo los campos presentes (semántica de merge).
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryMessageResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Points != nil {
		if *in.Points <= 0 {
			return nil, domain.ErrInvalidInput
		}
		category.Points = *in.Points
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsAutomatic != nil {
		category.IsAutomatic = *in.IsAutomatic
	}
	if in.Subcategories != nil {
		category.Subcategories = *in.Subcategories
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return &dto.CategoryMessageResponse{
		Category: mapper.CategoryToResponse(category),
		Message:  "Categoría actualizada correctamente",
	}, nil
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(id string) (*dto.MessageResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: "Categoría eliminada correctamente"}, nil
}
