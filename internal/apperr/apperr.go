// Package apperr defines the typed domain errors shared by services and
// repositories. Handlers translate these into HTTP status codes; nothing in
// this package knows about HTTP.
package apperr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a lookup by id or natural key
// misses. It is never used for the comparator's "sin cierre de caja" outcome,
// which is a valid result and not an error.
var ErrNotFound = errors.New("registro no encontrado")

// ValidationError covers caller-correctable input problems: missing local or
// encargado, negative quantities, non-positive ingreso amounts, and state
// violations such as writing to a completed planilla.
type ValidationError struct {
	Campo      string
	Detalle    string
	ProductoID *uuid.UUID
}

func (e *ValidationError) Error() string {
	if e.ProductoID != nil {
		return fmt.Sprintf("validación: %s (%s, producto %s)", e.Detalle, e.Campo, e.ProductoID)
	}
	if e.Campo != "" {
		return fmt.Sprintf("validación: %s (%s)", e.Detalle, e.Campo)
	}
	return "validación: " + e.Detalle
}

// NewValidation builds a ValidationError for a header-level field.
func NewValidation(campo, detalle string) *ValidationError {
	return &ValidationError{Campo: campo, Detalle: detalle}
}

// NewValidationProducto builds a ValidationError scoped to one product line so
// the UI can highlight the offending input.
func NewValidationProducto(productoID uuid.UUID, campo, detalle string) *ValidationError {
	return &ValidationError{Campo: campo, Detalle: detalle, ProductoID: &productoID}
}

// FieldLockedError is returned when a write hits a quantity whose lock flag is
// already set. Only Finalizar writes through locks.
type FieldLockedError struct {
	ProductoID uuid.UUID
	Campo      string
}

func (e *FieldLockedError) Error() string {
	return fmt.Sprintf("campo %s bloqueado para el producto %s", e.Campo, e.ProductoID)
}

// PersistenceError wraps an opaque storage failure. The core never retries;
// retry policy, if any, belongs to the storage adapter or the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistencia: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistence wraps err with the failing operation name.
func NewPersistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFieldLocked reports whether err is (or wraps) a FieldLockedError.
func IsFieldLocked(err error) bool {
	var fe *FieldLockedError
	return errors.As(err, &fe)
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
