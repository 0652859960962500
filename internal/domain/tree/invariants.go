// Package tree contiene las invariantes puras del árbol de categorías.
// Ninguna función hace I/O propia: operan sobre datos ya cargados o sobre un
// fetch inyectado por el caller, de modo que el servicio decide la
// transacción en la que se evalúan.
package tree

import (
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// FetchParent resuelve una categoría por ID (nil si no existe). El caso de uso
// inyecta aquí el repositorio atado a la transacción en curso, para que la
// validación de ciclos vea la cadena de padres más reciente.
type FetchParent func(id string) (*entity.Category, error)

// WouldCreateCycle verifica si asignar candidateParentID como padre de
// categoryID crearía un ciclo: es cierto si son el mismo nodo o si subiendo
// por los ancestros de candidateParentID se alcanza categoryID.
//
// El recorrido es iterativo y acotado por entity.MaxCategoryDepth; exceder la
// cota se trata como ciclo (falla segura ante datos corruptos).
func WouldCreateCycle(categoryID, candidateParentID string, fetch FetchParent) (bool, error) {
	if candidateParentID == "" {
		return false, nil
	}
	if categoryID == candidateParentID {
		return true, nil
	}
	current := candidateParentID
	for i := 0; i < entity.MaxCategoryDepth; i++ {
		ancestor, err := fetch(current)
		if err != nil {
			return false, err
		}
		if ancestor == nil || ancestor.ParentID == "" {
			return false, nil
		}
		if ancestor.ParentID == categoryID {
			return true, nil
		}
		current = ancestor.ParentID
	}
	// Cadena más profunda que la cota: asumir ciclo antes que colgarse.
	return true, nil
}

// ComputeDepth deriva la profundidad a partir del padre: 0 para raíces.
func ComputeDepth(parent *entity.Category) int {
	if parent == nil {
		return 0
	}
	return parent.Depth + 1
}

// IsDuplicateSibling verifica colisión de nombre exacta (case-sensitive)
// contra hermanos activos, excluyendo el registro que se está editando.
func IsDuplicateSibling(name string, siblings []*entity.Category, excludeID string) bool {
	for _, s := range siblings {
		if s.ID == excludeID || !s.IsActive {
			continue
		}
		if s.Name == name {
			return true
		}
	}
	return false
}

// CanSetCategoryType indica si el tipo de categoría es configurable:
// solo en raíces (depth 0).
func CanSetCategoryType(depth int) bool {
	return depth == 0
}
