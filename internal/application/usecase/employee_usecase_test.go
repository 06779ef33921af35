package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/domain/entity"
)

type fakeEmployeeRepo struct {
	byManager map[string][]*entity.EmployeeNode
}

func (r *fakeEmployeeRepo) ListByManager(managerID string) ([]*entity.EmployeeNode, error) {
	// Nodos frescos en cada llamada: la expansión muta Reports.
	var out []*entity.EmployeeNode
	for _, n := range r.byManager[managerID] {
		copia := *n
		out = append(out, &copia)
	}
	return out, nil
}

func TestTeam_ExpandeRecursivamente(t *testing.T) {
	repo := &fakeEmployeeRepo{byManager: map[string][]*entity.EmployeeNode{
		"mgr": {
			{ID: "sup", Name: "Sofía", ActiveRole: entity.RoleSupervisor},
		},
		"sup": {
			{ID: "col1", Name: "Carlos", ActiveRole: entity.RoleColaborador},
			{ID: "col2", Name: "Clara", ActiveRole: entity.RoleColaborador},
		},
	}}
	uc := usecase.NewEmployeeUseCase(repo)

	tree, err := uc.Team("mgr")
	require.NoError(t, err)

	require.Len(t, tree, 1)
	assert.Equal(t, "Sofía", tree[0].Name)
	require.Len(t, tree[0].Reports, 2)
	assert.Empty(t, tree[0].Reports[0].Reports)
}

// Un ciclo en la jerarquía (a reporta a b, b reporta a a) no cuelga la expansión.
func TestTeam_CicloNoSeCuelga(t *testing.T) {
	repo := &fakeEmployeeRepo{byManager: map[string][]*entity.EmployeeNode{
		"a": {{ID: "b", Name: "B"}},
		"b": {{ID: "a", Name: "A"}},
	}}
	uc := usecase.NewEmployeeUseCase(repo)

	tree, err := uc.Team("a")
	require.NoError(t, err)
	require.NotEmpty(t, tree)
}

func TestTeam_SinReportes(t *testing.T) {
	repo := &fakeEmployeeRepo{byManager: map[string][]*entity.EmployeeNode{}}
	uc := usecase.NewEmployeeUseCase(repo)

	tree, err := uc.Team("solo")
	require.NoError(t, err)
	assert.Empty(t, tree)
}
