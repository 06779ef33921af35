package dto

// RegisterRequest entrada para registro (auth).
type RegisterRequest struct {
	EmployeeNumber string `json:"employeeNumber" validate:"required,max=20"`
	Name           string `json:"name" validate:"required,min=1,max=200"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SwitchRoleRequest cambio de rol activo (el usuario debe poseer el rol).
type SwitchRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Administrador Manager Supervisor Colaborador"`
}
