package repository

// AssignmentRepository define el puerto de persistencia para la relación
// categoría raíz ↔ oficina.
type AssignmentRepository interface {
	// InsertMissing inserta solo los pares (categoryID, officeID) que no
	// existan aún (idempotente). Devuelve cuántos se crearon.
	InsertMissing(categoryID string, officeIDs []string) (int, error)
	// Delete elimina el par; devuelve false si no existía.
	Delete(categoryID, officeID string) (bool, error)
	ListOfficeIDs(categoryID string) ([]string, error)
	// DeleteForCategories limpia las asignaciones de un subárbol borrado.
	DeleteForCategories(categoryIDs []string) error
}
