package entity

// EmployeeNode nodo del árbol de equipo (manager → reportes directos, recursivo).
// Vista de solo lectura, no se muta desde esta capa.
type EmployeeNode struct {
	ID             string
	EmployeeNumber string
	Name           string
	Email          string
	ActiveRole     string
	ProfilePicture string
	Reports        []*EmployeeNode
}
