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

// PrizeUseCase reglas de negocio para el catálogo de premios.
// IsActive se deriva del stock: un premio sin stock queda inactivo.
type PrizeUseCase struct {
	repo   repository.PrizeRepository
	images ImageStore
}

// NewPrizeUseCase construye el caso de uso.
func NewPrizeUseCase(repo repository.PrizeRepository, images ImageStore) *PrizeUseCase {
	return &PrizeUseCase{repo: repo, images: images}
}

// List lista premios con paginación.
func (uc *PrizeUseCase) List(limit, offset int) ([]dto.PrizeResponse, error) {
	prizes, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PrizeResponse, 0, len(prizes))
	for _, p := range prizes {
		out = append(out, mapper.PrizeToResponse(p))
	}
	return out, nil
}

// GetByID obtiene un premio por ID.
func (uc *PrizeUseCase) GetByID(id string) (*dto.PrizeResponse, error) {
	prize, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, domain.ErrNotFound
	}
	resp := mapper.PrizeToResponse(prize)
	return &resp, nil
}

// Create crea un premio; si llega imagen se guarda y el servidor calcula la ruta.
func (uc *PrizeUseCase) Create(in dto.CreatePrizeRequest, imageName string, imageData []byte) (*dto.PrizeMessageResponse, error) {
	if in.Cost <= 0 || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrCodeAlreadyExists
	}
	var imagePath string
	if len(imageData) > 0 {
		path, err := uc.images.Save(imageName, imageData)
		if err != nil {
			return nil, err
		}
		imagePath = path
	}
	now := time.Now()
	prize := &entity.Prize{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Description: in.Description,
		ImagePath:   imagePath,
		Cost:        in.Cost,
		Stock:       in.Stock,
		IsActive:    in.IsActive && in.Stock > 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(prize); err != nil {
		return nil, err
	}
	return &dto.PrizeMessageResponse{
		Prize:   mapper.PrizeToResponse(prize),
		Message: "Premio creado correctamente",
	}, nil
}

// Update aplica solo los campos presentes; una imagen nueva reemplaza la anterior.
func (uc *PrizeUseCase) Update(id string, in dto.UpdatePrizeRequest, imageName string, imageData []byte) (*dto.PrizeMessageResponse, error) {
	prize, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, domain.ErrNotFound
	}
	if in.Cost != nil {
		if *in.Cost <= 0 {
			return nil, domain.ErrInvalidInput
		}
		prize.Cost = *in.Cost
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		prize.Stock = *in.Stock
	}
	if in.Description != nil {
		prize.Description = *in.Description
	}
	if in.IsActive != nil {
		prize.IsActive = *in.IsActive
	}
	// Stock 0 fuerza inactivo, sin importar lo que pida el cliente.
	if prize.Stock == 0 {
		prize.IsActive = false
	}
	if len(imageData) > 0 {
		path, err := uc.images.Save(imageName, imageData)
		if err != nil {
			return nil, err
		}
		if prize.ImagePath != "" {
			_ = uc.images.Remove(prize.ImagePath)
		}
		prize.ImagePath = path
	}
	prize.UpdatedAt = time.Now()
	if err := uc.repo.Update(prize); err != nil {
		return nil, err
	}
	return &dto.PrizeMessageResponse{
		Prize:   mapper.PrizeToResponse(prize),
		Message: "Premio actualizado correctamente",
	}, nil
}

// ToggleActive alterna el estado activo. No se puede activar sin stock.
func (uc *PrizeUseCase) ToggleActive(id string) (*dto.PrizeMessageResponse, error) {
	prize, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, domain.ErrNotFound
	}
	next := !prize.IsActive
	if next && prize.Stock == 0 {
		return nil, domain.ErrOutOfStock
	}
	if err := uc.repo.SetActive(id, next); err != nil {
		return nil, err
	}
	prize.IsActive = next
	msg := "Premio activado correctamente"
	if !next {
		msg = "Premio desactivado correctamente"
	}
	return &dto.PrizeMessageResponse{
		Prize:   mapper.PrizeToResponse(prize),
		Message: msg,
	}, nil
}

// Delete elimina un premio y su imagen asociada.
func (uc *PrizeUseCase) Delete(id string) (*dto.MessageResponse, error) {
	prize, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prize == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	if prize.ImagePath != "" {
		_ = uc.images.Remove(prize.ImagePath)
	}
	return &dto.MessageResponse{Message: "Premio eliminado correctamente"}, nil
}
