package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Todos son condiciones
// esperadas y recuperables por el caller, nunca crashes; jamás se reintentan
// automáticamente porque son semánticos, no transitorios.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("el recurso ya existe")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Errores estructurales del árbol de categorías.
	ErrParentNotFound    = errors.New("categoría padre no encontrada")
	ErrDuplicateName     = errors.New("ya existe un hermano activo con ese nombre")
	ErrSelfParent        = errors.New("una categoría no puede ser su propio padre")
	ErrCircularReference = errors.New("el movimiento crearía un ciclo en el árbol")
	ErrNotRootCategory   = errors.New("la operación solo aplica a categorías raíz")
	ErrTreeCorrupted     = errors.New("cadena de padres excede la profundidad máxima")
)

// DependentsError bloquea un Delete sin force: lleva los conteos para que el
// caller pueda confirmar el borrado en cascada.
type DependentsError struct {
	ChildCount int
	ItemCount  int
}

func (e *DependentsError) Error() string {
	return fmt.Sprintf("la categoría tiene dependientes (%d hijas, %d ítems)", e.ChildCount, e.ItemCount)
}

// ConflictError señala un choque de concurrencia optimista: la versión
// esperada no coincide con la persistida. Lleva la versión actual y el último
// editor para que el cliente pueda reconciliar.
type ConflictError struct {
	CurrentVersion int
	LastModifiedBy string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("modificación concurrente: versión actual %d (último editor %s)", e.CurrentVersion, e.LastModifiedBy)
}
