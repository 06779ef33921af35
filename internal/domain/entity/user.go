package entity

import "time"

// Estados válidos para la cuenta de un usuario.
const (
	StatusActivo    = "Activo"
	StatusInactivo  = "Inactivo"
	StatusPendiente = "Pendiente"
)

// User representa un empleado del programa de reconocimiento.
// Un usuario posee uno o más roles y exactamente un ActiveRole vigente;
// el saldo disponible de huellas siempre se deriva, nunca se persiste.
type User struct {
	ID             string
	EmployeeNumber string
	Name           string
	Email          string
	PasswordHash   string // bcrypt, nunca plano en dominio después de persistir
	Status         string // Activo, Inactivo, Pendiente
	Roles          []Role
	ActiveRole     string
	ProfilePicture string // ruta relativa servida como estático
	ManagerID      string // vacío si no reporta a nadie
	AssignedPoints int
	RedeemedPoints int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AvailablePoints huellas asignadas menos huellas canjeadas.
func (u *User) AvailablePoints() int {
	return u.AssignedPoints - u.RedeemedPoints
}

// HasRole indica si el usuario posee el rol dado.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
