package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrImmutable         = errors.New("registro inmutable por antigüedad")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDeletedReference  = errors.New("referencia a un recurso eliminado")
)
