package priceguide_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// Escenario 6 del diseño: 3 raíces, cada una con 2 hijas y 10 ítems por
// categoría. Los totales en cascada deben coincidir con la suma recursiva
// por fuerza bruta.
func TestTree_ConteosEnCascada(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	price := decimal.NewFromFloat(12.50)
	for i := 0; i < 3; i++ {
		root := mustCreate(t, uc, string(rune('A'+i)), "")
		store.items[root.ID] = entity.ItemStats{Count: 10, TotalPrice: price.Mul(decimal.NewFromInt(10))}
		for j := 0; j < 2; j++ {
			child := mustCreate(t, uc, string(rune('A'+i))+string(rune('1'+j)), root.ID)
			store.items[child.ID] = entity.ItemStats{Count: 10, TotalPrice: price.Mul(decimal.NewFromInt(10))}
		}
	}

	forest, err := uc.Tree(context.Background(), testCompanyID, repository.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, forest, 3)

	for _, root := range forest {
		require.Len(t, root.Children, 2)
		assert.Equal(t, 10, root.DirectItemCount)
		assert.Equal(t, 30, root.ItemCount, "raíz %s agrega sus dos hijas", root.Name)

		wantTotal := bruteForceTotal(root)
		assert.True(t, root.TotalPrice.Equal(wantTotal),
			"raíz %s: esperado %s, obtenido %s", root.Name, wantTotal, root.TotalPrice)

		for _, child := range root.Children {
			assert.Equal(t, 10, child.ItemCount)
			assert.True(t, child.TotalPrice.Equal(child.DirectTotalPrice))
		}
	}
}

// bruteForceTotal suma DirectTotalPrice recursivamente, sin depender de la
// cascada que se está verificando.
func bruteForceTotal(node *dto.TreeNode) decimal.Decimal {
	total := node.DirectTotalPrice
	for _, child := range node.Children {
		total = total.Add(bruteForceTotal(child))
	}
	return total
}

// Los hermanos salen en orden de sort_order, no de inserción ni alfabético.
func TestTree_OrdenDeHermanos(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	z := mustCreate(t, uc, "Zeta", "")
	a := mustCreate(t, uc, "Alfa", "")

	// Reordenar: Alfa primero.
	_, err := uc.Reorder(context.Background(), testCompanyID, testUserID, dto.ReorderCategoriesRequest{
		Items: []dto.ReorderItem{
			{ID: a.ID, SortOrder: "G"},
			{ID: z.ID, SortOrder: "V"},
		},
	})
	require.NoError(t, err)

	forest, err := uc.Tree(context.Background(), testCompanyID, repository.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, forest, 2)
	assert.Equal(t, "Alfa", forest[0].Name)
	assert.Equal(t, "Zeta", forest[1].Name)
}

// Cuando el filtro excluye al padre, la hija se promueve a raíz sintética
// en vez de desaparecer del bosque.
func TestTree_HuerfanaPromovida(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)

	inactive := false
	_, err := uc.Update(context.Background(), testCompanyID, testUserID, root.ID, dto.UpdateCategoryRequest{
		ExpectedVersion: root.Version,
		IsActive:        &inactive,
	})
	require.NoError(t, err)

	// Filtro por defecto: solo activas. El padre inactivo queda fuera.
	forest, err := uc.Tree(context.Background(), testCompanyID, repository.CategoryFilter{})
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, child.ID, forest[0].ID)

	// Incluyendo inactivas el árbol vuelve a su forma real.
	forest, err = uc.Tree(context.Background(), testCompanyID, repository.CategoryFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, root.ID, forest[0].ID)
	require.Len(t, forest[0].Children, 1)
}

// Empresa sin categorías: bosque vacío, no nil, para que el JSON sea [].
func TestTree_Vacio(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	forest, err := uc.Tree(context.Background(), testCompanyID, repository.CategoryFilter{})
	require.NoError(t, err)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
}
