package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidCategory        = errors.New("categoría inválida")
	ErrInvalidStatus          = errors.New("estado de inventario inválido")
	ErrInvalidTransactionType = errors.New("tipo de transacción inválido")
	ErrInvalidPrice           = errors.New("el precio debe ser mayor que cero")
	ErrInvalidQuantity        = errors.New("cantidad inválida")
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrMalformedRecord        = errors.New("registro malformado")
)
