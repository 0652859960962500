package tree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/tree"
)

// fetchFrom construye un FetchParent sobre un mapa en memoria.
func fetchFrom(cats map[string]*entity.Category) tree.FetchParent {
	return func(id string) (*entity.Category, error) {
		return cats[id], nil
	}
}

// Cadena raíz → a → b → c para los casos de ciclo.
func chainFixture() map[string]*entity.Category {
	return map[string]*entity.Category{
		"root": {ID: "root", Depth: 0},
		"a":    {ID: "a", ParentID: "root", Depth: 1},
		"b":    {ID: "b", ParentID: "a", Depth: 2},
		"c":    {ID: "c", ParentID: "b", Depth: 3},
	}
}

// Caso 1: auto-referencia directa es ciclo.
func TestWouldCreateCycle_SelfParent(t *testing.T) {
	cycle, err := tree.WouldCreateCycle("a", "a", fetchFrom(chainFixture()))
	require.NoError(t, err)
	assert.True(t, cycle)
}

// Caso 2: mover un ancestro bajo su descendiente es ciclo (root bajo c).
func TestWouldCreateCycle_AncestroBajoDescendiente(t *testing.T) {
	cats := chainFixture()

	cycle, err := tree.WouldCreateCycle("root", "c", fetchFrom(cats))
	require.NoError(t, err)
	assert.True(t, cycle, "root es ancestro de c: moverlo bajo c cierra un ciclo")

	cycle, err = tree.WouldCreateCycle("a", "c", fetchFrom(cats))
	require.NoError(t, err)
	assert.True(t, cycle)
}

// Caso 3: mover hacia un subárbol ajeno no es ciclo.
func TestWouldCreateCycle_MovimientoValido(t *testing.T) {
	cats := chainFixture()
	cats["otra"] = &entity.Category{ID: "otra", Depth: 0}

	cycle, err := tree.WouldCreateCycle("c", "otra", fetchFrom(cats))
	require.NoError(t, err)
	assert.False(t, cycle)

	// Mover hacia la raíz tampoco es ciclo.
	cycle, err = tree.WouldCreateCycle("c", "", fetchFrom(cats))
	require.NoError(t, err)
	assert.False(t, cycle)
}

// Caso 4: cadena de padres corrupta (más profunda que la cota) → falla segura como ciclo.
func TestWouldCreateCycle_CotaDeProfundidad(t *testing.T) {
	// Dos nodos que se apuntan mutuamente: el recorrido nunca llega a raíz.
	cats := map[string]*entity.Category{
		"x": {ID: "x", ParentID: "y"},
		"y": {ID: "y", ParentID: "x"},
	}
	cycle, err := tree.WouldCreateCycle("z", "x", fetchFrom(cats))
	require.NoError(t, err)
	assert.True(t, cycle, "exceder la cota debe tratarse como ciclo")
}

// Caso 5: errores del fetch se propagan, no se tragan.
func TestWouldCreateCycle_ErrorDelFetch(t *testing.T) {
	boom := errors.New("db caída")
	_, err := tree.WouldCreateCycle("a", "b", func(string) (*entity.Category, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestComputeDepth(t *testing.T) {
	assert.Equal(t, 0, tree.ComputeDepth(nil), "sin padre → raíz")
	assert.Equal(t, 1, tree.ComputeDepth(&entity.Category{Depth: 0}))
	assert.Equal(t, 5, tree.ComputeDepth(&entity.Category{Depth: 4}))
}

func TestIsDuplicateSibling(t *testing.T) {
	siblings := []*entity.Category{
		{ID: "1", Name: "Ventanas", IsActive: true},
		{ID: "2", Name: "Puertas", IsActive: true},
		{ID: "3", Name: "Techos", IsActive: false},
	}

	assert.True(t, tree.IsDuplicateSibling("Ventanas", siblings, ""))
	assert.False(t, tree.IsDuplicateSibling("ventanas", siblings, ""),
		"la comparación es case-sensitive exacta")
	assert.False(t, tree.IsDuplicateSibling("Techos", siblings, ""),
		"los hermanos inactivos no cuentan")
	assert.False(t, tree.IsDuplicateSibling("Ventanas", siblings, "1"),
		"el propio registro en edición se excluye")
	assert.False(t, tree.IsDuplicateSibling("Fachadas", siblings, ""))
}

func TestCanSetCategoryType(t *testing.T) {
	assert.True(t, tree.CanSetCategoryType(0))
	assert.False(t, tree.CanSetCategoryType(1))
	assert.False(t, tree.CanSetCategoryType(7))
}
