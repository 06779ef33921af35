package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/domain"
	"github.com/publicis/rewards-api/internal/domain/entity"
)

func roleSet(names ...string) []entity.Role {
	out := make([]entity.Role, 0, len(names))
	for _, n := range names {
		out = append(out, entity.Role{ID: entity.RoleID(n), Name: n})
	}
	return out
}

func buildAssignmentUC(users *fakeUserRepo, assignments *fakeAssignmentRepo, categories *fakeCategoryRepo) *usecase.AssignmentUseCase {
	tx := &fakeTx{
		users:       users,
		assignments: assignments,
		prizes:      newFakePrizeRepo(),
		redemptions: &fakeRedemptionRepo{},
	}
	return usecase.NewAssignmentUseCase(tx, categories, users, assignments)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin → Manager
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateManagerGrant_SumaSaldoAlManager(t *testing.T) {
	admin := &entity.User{ID: "admin", Name: "Admin", Roles: roleSet(entity.RoleAdministrador)}
	manager := &entity.User{ID: "mgr", Name: "Marta", Roles: roleSet(entity.RoleManager)}
	users := newFakeUserRepo(admin, manager)
	assignments := &fakeAssignmentRepo{}
	uc := buildAssignmentUC(users, assignments, newFakeCategoryRepo())

	out, err := uc.CreateManagerGrant(context.Background(), "admin", dto.CreateManagerGrantRequest{
		RecipientID: "mgr",
		Points:      500,
	})
	require.NoError(t, err)

	assert.Equal(t, "Huellas asignadas correctamente", out.Message)
	assert.Equal(t, entity.AssignmentManager, out.Assignment.Kind)
	assert.Equal(t, 500, manager.AssignedPoints, "las huellas deben sumarse al saldo del manager")
	assert.Len(t, assignments.items, 1)
}

// El receptor debe poseer el rol Manager aunque tenga otros.
func TestCreateManagerGrant_ReceptorSinRolManager(t *testing.T) {
	admin := &entity.User{ID: "admin", Name: "Admin", Roles: roleSet(entity.RoleAdministrador)}
	colab := &entity.User{ID: "col", Name: "Carlos", Roles: roleSet(entity.RoleColaborador)}
	users := newFakeUserRepo(admin, colab)
	uc := buildAssignmentUC(users, &fakeAssignmentRepo{}, newFakeCategoryRepo())

	_, err := uc.CreateManagerGrant(context.Background(), "admin", dto.CreateManagerGrantRequest{
		RecipientID: "col",
		Points:      100,
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 0, colab.AssignedPoints, "un rechazo no debe mover saldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Manager → Colaborador
// ──────────────────────────────────────────────────────────────────────────────

func managerGrantFixtures() (*fakeUserRepo, *fakeCategoryRepo, *entity.User, *entity.User) {
	manager := &entity.User{
		ID: "mgr", Name: "Marta",
		Roles:          roleSet(entity.RoleManager),
		AssignedPoints: 100,
	}
	colab := &entity.User{ID: "col", Name: "Carlos", Roles: roleSet(entity.RoleColaborador)}
	users := newFakeUserRepo(manager, colab)
	categories := newFakeCategoryRepo(&entity.BadgeCategory{
		ID: "c1", Code: "TRABAJO_EQUIPO", Description: "Trabajo en equipo", Points: 60,
	})
	return users, categories, manager, colab
}

func TestCreateCollaboratorGrant_EntregaPuntosDeLaCategoria(t *testing.T) {
	users, categories, _, colab := managerGrantFixtures()
	uc := buildAssignmentUC(users, &fakeAssignmentRepo{}, categories)

	out, err := uc.CreateCollaboratorGrant(context.Background(), "mgr", dto.CreateCollaboratorGrantRequest{
		RecipientID:  "col",
		CategoryCode: "TRABAJO_EQUIPO",
		Comment:      "Gran apoyo en el cierre de campaña",
	})
	require.NoError(t, err)

	assert.Equal(t, "Reconocimiento enviado correctamente", out.Message)
	assert.Equal(t, 60, out.Assignment.Points, "los puntos los fija la categoría, no el cliente")
	assert.Equal(t, 60, colab.AssignedPoints)
}

// El total entregado por el manager no puede superar su saldo disponible:
// con 100 de saldo y 60 ya entregados, otra categoría de 60 debe rechazarse.
func TestCreateCollaboratorGrant_SaldoInsuficiente(t *testing.T) {
	users, categories, _, colab := managerGrantFixtures()
	assignments := &fakeAssignmentRepo{}
	uc := buildAssignmentUC(users, assignments, categories)

	_, err := uc.CreateCollaboratorGrant(context.Background(), "mgr", dto.CreateCollaboratorGrantRequest{
		RecipientID: "col", CategoryCode: "TRABAJO_EQUIPO", Comment: "primero",
	})
	require.NoError(t, err)

	_, err = uc.CreateCollaboratorGrant(context.Background(), "mgr", dto.CreateCollaboratorGrantRequest{
		RecipientID: "col", CategoryCode: "TRABAJO_EQUIPO", Comment: "segundo",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)

	assert.Equal(t, 60, colab.AssignedPoints, "el segundo intento no debe entregar nada")
	assert.Len(t, assignments.items, 1)
}

// La comprobación de saldo lee al asignador con bloqueo de fila dentro de la
// transacción, para que dos asignaciones simultáneas del mismo manager no
// sobregiren su saldo.
func TestCreateCollaboratorGrant_LeeSaldoConBloqueoDeFila(t *testing.T) {
	users, categories, _, _ := managerGrantFixtures()
	uc := buildAssignmentUC(users, &fakeAssignmentRepo{}, categories)

	_, err := uc.CreateCollaboratorGrant(context.Background(), "mgr", dto.CreateCollaboratorGrantRequest{
		RecipientID: "col", CategoryCode: "TRABAJO_EQUIPO", Comment: "apoyo en el cierre",
	})
	require.NoError(t, err)

	assert.Contains(t, users.locked, "mgr", "el saldo del asignador debe leerse con la fila bloqueada")
}

func TestCreateCollaboratorGrant_ComentarioObligatorio(t *testing.T) {
	users, categories, _, _ := managerGrantFixtures()
	uc := buildAssignmentUC(users, &fakeAssignmentRepo{}, categories)

	_, err := uc.CreateCollaboratorGrant(context.Background(), "mgr", dto.CreateCollaboratorGrantRequest{
		RecipientID: "col", CategoryCode: "TRABAJO_EQUIPO", Comment: "",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCollaboratorGrant_CategoriaAutomaticaRechazada(t *testing.T) {
	users, categories, _, _ := managerGrantFixtures()
	require.NoError(t, categories.Create(&entity.BadgeCategory{
		ID: "c2", Code: "ANIVERSARIO", Points: 40, IsAutomatic: true,
	}))
	uc := buildAssignmentUC(users, &fakeAssignmentRepo{}, categories)

	_, err := uc.CreateCollaboratorGrant(context.Background(), "mgr", dto.CreateCollaboratorGrantRequest{
		RecipientID: "col", CategoryCode: "ANIVERSARIO", Comment: "felicidades",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput,
		"las categorías automáticas no se asignan a mano")
}

func TestListByKind_TipoInvalido(t *testing.T) {
	users, categories, _, _ := managerGrantFixtures()
	uc := buildAssignmentUC(users, &fakeAssignmentRepo{}, categories)

	_, err := uc.ListByKind("otro", 20, 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
