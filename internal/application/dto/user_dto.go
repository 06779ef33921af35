package dto

import "time"

// RoleDTO par id/nombre de un rol.
type RoleDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	EmployeeNumber string `json:"employeeNumber" validate:"required,max=20"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" validate:"omitempty,oneof=Administrador Manager Supervisor Colaborador"`
	ManagerID      string `json:"managerId" validate:"omitempty,uuid"`
}

// UpdateUserRequest campos editables de un usuario. Sólo los presentes se aplican.
type UpdateUserRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email          *string `json:"email" validate:"omitempty,email"`
	EmployeeNumber *string `json:"employeeNumber" validate:"omitempty,max=20"`
	ManagerID      *string `json:"managerId" validate:"omitempty,uuid"`
}

// AssignRolesRequest reemplaza el conjunto de roles de un usuario.
type AssignRolesRequest struct {
	Roles []string `json:"roles" validate:"required,min=1,dive,oneof=Administrador Manager Supervisor Colaborador"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID              string    `json:"id"`
	EmployeeNumber  string    `json:"employeeNumber"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	Roles           []RoleDTO `json:"roles"`
	ActiveRole      string    `json:"activeRole"`
	ProfilePicture  string    `json:"profilePicture,omitempty"`
	ManagerID       string    `json:"managerId,omitempty"`
	AssignedPoints  int       `json:"assignedPoints"`
	RedeemedPoints  int       `json:"redeemedPoints"`
	AvailablePoints int       `json:"availablePoints"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserMessageResponse usuario + mensaje del servidor (creación/actualización).
type UserMessageResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// BalanceResponse saldo de huellas de un usuario.
type BalanceResponse struct {
	UserID          string `json:"userId"`
	AssignedPoints  int    `json:"assignedPoints"`
	RedeemedPoints  int    `json:"redeemedPoints"`
	AvailablePoints int    `json:"availablePoints"`
}
