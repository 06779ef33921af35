package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
)

// Crear con stock 0 deja el premio inactivo aunque el cliente pida activo.
func TestPrizeCreate_StockCeroFuerzaInactivo(t *testing.T) {
	uc := usecase.NewPrizeUseCase(newFakePrizeRepo(), &fakeImages{})

	out, err := uc.Create(dto.CreatePrizeRequest{
		Code: "TAZA", Description: "Taza corporativa", Cost: 50, Stock: 0, IsActive: true,
	}, "", nil)
	require.NoError(t, err)
	assert.False(t, out.Prize.IsActive)
}

func TestPrizeCreate_ConImagenCalculaRuta(t *testing.T) {
	images := &fakeImages{}
	uc := usecase.NewPrizeUseCase(newFakePrizeRepo(), images)

	out, err := uc.Create(dto.CreatePrizeRequest{
		Code: "GORRA", Description: "Gorra", Cost: 30, Stock: 5, IsActive: true,
	}, "gorra.png", []byte{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/gorra.png", out.Prize.ImagePath,
		"la ruta de la imagen la decide el servidor")
	assert.Len(t, images.saved, 1)
}

// Semántica de merge: {cost:10, stock:3} + update(cost:20) = {cost:20, stock:3}.
func TestPrizeUpdate_MergeParcial(t *testing.T) {
	repo := newFakePrizeRepo(&entity.Prize{
		ID: "p5", Code: "X", Cost: 10, Stock: 3, IsActive: true,
	})
	uc := usecase.NewPrizeUseCase(repo, &fakeImages{})

	cost := 20
	out, err := uc.Update("p5", dto.UpdatePrizeRequest{Cost: &cost}, "", nil)
	require.NoError(t, err)

	assert.Equal(t, 20, out.Prize.Cost)
	assert.Equal(t, 3, out.Prize.Stock, "los campos ausentes se conservan")
	assert.True(t, out.Prize.IsActive)
}

func TestPrizeUpdate_StockCeroDesactiva(t *testing.T) {
	repo := newFakePrizeRepo(&entity.Prize{ID: "p1", Code: "X", Cost: 10, Stock: 3, IsActive: true})
	uc := usecase.NewPrizeUseCase(repo, &fakeImages{})

	zero := 0
	activo := true
	out, err := uc.Update("p1", dto.UpdatePrizeRequest{Stock: &zero, IsActive: &activo}, "", nil)
	require.NoError(t, err)
	assert.False(t, out.Prize.IsActive, "stock 0 fuerza inactivo aunque el cliente pida activo")
}

// La imagen nueva reemplaza a la vieja y la vieja se borra del disco.
func TestPrizeUpdate_ReemplazaImagen(t *testing.T) {
	images := &fakeImages{}
	repo := newFakePrizeRepo(&entity.Prize{
		ID: "p1", Code: "X", Cost: 10, Stock: 3, IsActive: true, ImagePath: "/uploads/vieja.png",
	})
	uc := usecase.NewPrizeUseCase(repo, images)

	out, err := uc.Update("p1", dto.UpdatePrizeRequest{}, "nueva.png", []byte{1})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/nueva.png", out.Prize.ImagePath)
	assert.Equal(t, []string{"/uploads/vieja.png"}, images.removed)
}

func TestPrizeToggle_NoActivaSinStock(t *testing.T) {
	repo := newFakePrizeRepo(&entity.Prize{ID: "p1", Code: "X", Cost: 10, Stock: 0, IsActive: false})
	uc := usecase.NewPrizeUseCase(repo, &fakeImages{})

	_, err := uc.ToggleActive("p1")
	require.ErrorIs(t, err, domain.ErrOutOfStock)
}

func TestPrizeToggle_Desactiva(t *testing.T) {
	repo := newFakePrizeRepo(&entity.Prize{ID: "p1", Code: "X", Cost: 10, Stock: 3, IsActive: true})
	uc := usecase.NewPrizeUseCase(repo, &fakeImages{})

	out, err := uc.ToggleActive("p1")
	require.NoError(t, err)
	assert.False(t, out.Prize.IsActive)
	assert.Equal(t, "Premio desactivado correctamente", out.Message)
}

func TestPrizeDelete_BorraImagen(t *testing.T) {
	images := &fakeImages{}
	repo := newFakePrizeRepo(&entity.Prize{ID: "p1", Code: "X", Cost: 10, ImagePath: "/uploads/x.png"})
	uc := usecase.NewPrizeUseCase(repo, images)

	out, err := uc.Delete("p1")
	require.NoError(t, err)
	assert.Equal(t, "Premio eliminado correctamente", out.Message)
	assert.Equal(t, []string{"/uploads/x.png"}, images.removed)

	got, _ := repo.GetByID("p1")
	assert.Nil(t, got)
}
