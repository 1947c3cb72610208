package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrShipmentHeaderFailed = errors.New("no se pudo registrar la remesa principal")
)

// ValidationError campo obligatorio vacío o valor fuera de rango. Se detecta antes de tocar la BD.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid construye un ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConstraintViolation restricción UNIQUE violada en el almacén. Field es la columna afectada
// (nome_produto, sku, email); lo decide el adaptador de persistencia, no el texto del error.
type ConstraintViolation struct {
	Field string
}

func (e *ConstraintViolation) Error() string {
	if e.Field == "" {
		return "valor duplicado"
	}
	return fmt.Sprintf("valor duplicado para %s", e.Field)
}

// Is permite errors.Is(err, ErrDuplicate).
func (e *ConstraintViolation) Is(target error) bool {
	return target == ErrDuplicate
}
