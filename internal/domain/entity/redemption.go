package entity

import "time"

// Estados del historial de canje. Pendiente es el único estado desde el que
// se permite transicionar; Entregado y Anulado son terminales.
const (
	RedemptionPendiente = "Pendiente"
	RedemptionEntregado = "Entregado"
	RedemptionAnulado   = "Anulado"
)

// Redemption registro histórico de un canje de huellas por un premio.
// ChangedBy/ChangedAt se estampan al salir de Pendiente.
type Redemption struct {
	ID               string
	UserID           string
	UserName         string
	PrizeID          string
	PrizeCode        string
	PrizeDescription string
	Points           int
	Status           string // Pendiente, Entregado, Anulado
	RedeemedAt       time.Time
	ChangedBy        string
	ChangedAt        *time.Time
}
