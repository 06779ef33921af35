// Package mapper convierte entidades de dominio a DTOs de respuesta.
package mapper

import (
	"github.com/publicis/rewards-api/internal/application/dto"
	"github.com/publicis/rewards-api/internal/domain/entity"
)

// UserToResponse convierte un User a su DTO (sin password hash).
func UserToResponse(u *entity.User) dto.UserResponse {
	roles := make([]dto.RoleDTO, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, dto.RoleDTO{ID: r.ID, Name: r.Name})
	}
	return dto.UserResponse{
		ID:              u.ID,
		EmployeeNumber:  u.EmployeeNumber,
		Name:            u.Name,
		Email:           u.Email,
		Status:          u.Status,
		Roles:           roles,
		ActiveRole:      u.ActiveRole,
		ProfilePicture:  u.ProfilePicture,
		ManagerID:       u.ManagerID,
		AssignedPoints:  u.AssignedPoints,
		RedeemedPoints:  u.RedeemedPoints,
		AvailablePoints: u.AvailablePoints(),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// CategoryToResponse convierte una BadgeCategory a su DTO.
func CategoryToResponse(c *entity.BadgeCategory) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:            c.ID,
		Code:          c.Code,
		Description:   c.Description,
		Points:        c.Points,
		IsAutomatic:   c.IsAutomatic,
		Subcategories: c.Subcategories,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// AssignmentToResponse convierte una BadgeAssignment a su DTO.
func AssignmentToResponse(a *entity.BadgeAssignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:            a.ID,
		Kind:          a.Kind,
		AssignerID:    a.AssignerID,
		AssignerName:  a.AssignerName,
		RecipientID:   a.RecipientID,
		RecipientName: a.RecipientName,
		Points:        a.Points,
		CategoryCode:  a.CategoryCode,
		Description:   a.Description,
		Comment:       a.Comment,
		CreatedAt:     a.CreatedAt,
	}
}

// PrizeToResponse convierte un Prize a su DTO.
func PrizeToResponse(p *entity.Prize) dto.PrizeResponse {
	return dto.PrizeResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		ImagePath:   p.ImagePath,
		Cost:        p.Cost,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// RedemptionToResponse convierte un Redemption a su DTO.
func RedemptionToResponse(r *entity.Redemption) dto.RedemptionResponse {
	return dto.RedemptionResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		UserName:         r.UserName,
		PrizeID:          r.PrizeID,
		PrizeCode:        r.PrizeCode,
		PrizeDescription: r.PrizeDescription,
		Points:           r.Points,
		Status:           r.Status,
		RedeemedAt:       r.RedeemedAt,
		ChangedBy:        r.ChangedBy,
		ChangedAt:        r.ChangedAt,
	}
}

// EmployeeNodeToDTO convierte el árbol de equipo, recursivo.
func EmployeeNodeToDTO(n *entity.EmployeeNode) dto.EmployeeNodeDTO {
	out := dto.EmployeeNodeDTO{
		ID:             n.ID,
		EmployeeNumber: n.EmployeeNumber,
		Name:           n.Name,
		Email:          n.Email,
		ActiveRole:     n.ActiveRole,
		ProfilePicture: n.ProfilePicture,
	}
	for _, child := range n.Reports {
		out.Reports = append(out.Reports, EmployeeNodeToDTO(child))
	}
	return out
}
