package entity

import "github.com/shopspring/decimal"

// Los ítems de hoja de medidas (measure-sheet items) son entidades externas a
// este servicio: el árbol solo necesita contar cuántos referencian cada
// categoría y borrar esos vínculos en un delete forzado. ItemStats es la
// proyección de solo lectura de esos vínculos.
type ItemStats struct {
	Count      int
	TotalPrice decimal.Decimal // suma de precios unitarios de los ítems vinculados
}

// Add acumula otras estadísticas (para los totales en cascada del árbol).
func (s ItemStats) Add(other ItemStats) ItemStats {
	return ItemStats{
		Count:      s.Count + other.Count,
		TotalPrice: s.TotalPrice.Add(other.TotalPrice),
	}
}
