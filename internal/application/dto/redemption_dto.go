package dto

import "time"

// RedeemRequest canje de un premio por el usuario autenticado.
type RedeemRequest struct {
	PrizeID string `json:"prizeId" validate:"required,uuid"`
}

// ChangeRedemptionStatusRequest transición Pendiente → Entregado|Anulado.
type ChangeRedemptionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Entregado Anulado"`
}

// RedemptionResponse salida de un registro de canje.
type RedemptionResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	UserName         string     `json:"userName"`
	PrizeID          string     `json:"prizeId"`
	PrizeCode        string     `json:"prizeCode"`
	PrizeDescription string     `json:"prizeDescription"`
	Points           int        `json:"points"`
	Status           string     `json:"status"`
	RedeemedAt       time.Time  `json:"redeemedAt"`
	ChangedBy        string     `json:"changedBy,omitempty"`
	ChangedAt        *time.Time `json:"changedAt,omitempty"`
}

// RedemptionMessageResponse canje + mensaje del servidor.
type RedemptionMessageResponse struct {
	Redemption RedemptionResponse `json:"redemption"`
	Message    string             `json:"message"`
}
