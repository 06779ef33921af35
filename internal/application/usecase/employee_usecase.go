package usecase

import (
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/application/mapper"
	"github.com/publicis/rewards-api/internal/domain/entity"
	"github.com/publicis/rewards-api/internal/domain/repository"
)

// EmployeeUseCase árbol de equipo de un manager (solo lectura).
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Team reportes directos del manager, expandidos recursivamente.
func (uc *EmployeeUseCase) Team(managerID string) ([]dto.EmployeeNodeDTO, error) {
	nodes, err := uc.expand(managerID, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeNodeDTO, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, mapper.EmployeeNodeToDTO(n))
	}
	return out, nil
}

// maxTeamDepth corta ciclos accidentales en la jerarquía (manager de sí mismo).
const maxTeamDepth = 10

func (uc *EmployeeUseCase) expand(managerID string, depth int) ([]*entity.EmployeeNode, error) {
	if depth >= maxTeamDepth {
		return nil, nil
	}
	reports, err := uc.repo.ListByManager(managerID)
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		children, err := uc.expand(r.ID, depth+1)
		if err != nil {
			return nil, err
		}
		r.Reports = children
	}
	return reports, nil
}
