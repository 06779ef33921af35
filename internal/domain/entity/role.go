package entity

// Roles válidos del sistema. Datos de referencia inmutables.
const (
	RoleAdministrador = "Administrador"
	RoleManager       = "Manager"
	RoleSupervisor    = "Supervisor"
	RoleColaborador   = "Colaborador"
)

// Role par id/nombre de catálogo.
type Role struct {
	ID   int
	Name string
}

// ValidRole indica si name es uno de los cuatro roles conocidos.
func ValidRole(name string) bool {
	return RoleID(name) != 0
}

// RoleID id de referencia de cada rol conocido; 0 si el nombre no existe.
func RoleID(name string) int {
	switch name {
	case RoleAdministrador:
		return 1
	case RoleManager:
		return 2
	case RoleSupervisor:
		return 3
	case RoleColaborador:
		return 4
	}
	return 0
}
