package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrCodeAlreadyExists  = errors.New("el código ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientPoints = errors.New("huellas insuficientes")
	ErrOutOfStock         = errors.New("premio sin stock disponible")
	ErrRedemptionClosed   = errors.New("el canje ya no está pendiente")
	ErrRoleNotHeld        = errors.New("el usuario no posee ese rol")
)
