package priceguide_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/priceguide"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

const (
	testCompanyID = "00000000-0000-0000-0000-0000000000c0"
	testUserID    = "00000000-0000-0000-0000-0000000000u1"
	otherUserID   = "00000000-0000-0000-0000-0000000000u2"
)

func newCategoryUC(store *fakeStore) *priceguide.CategoryUseCase {
	return priceguide.NewCategoryUseCase(store, store, store, nopAudit{})
}

func mustCreate(t *testing.T, uc *priceguide.CategoryUseCase, name, parentID string) *dto.CategoryResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{
		Name:     name,
		ParentID: parentID,
	})
	require.NoError(t, err, "crear %q", name)
	return out
}

// ── Create ────────────────────────────────────────────────────────────────────

// Crear sin padre produce una raíz con depth 0 y versión 1.
func TestCreate_Raiz(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	out := mustCreate(t, uc, "Ventanas", "")

	assert.Equal(t, 0, out.Depth)
	assert.Equal(t, 1, out.Version)
	assert.Empty(t, out.ParentID)
	assert.True(t, out.IsActive)
	assert.NotEmpty(t, out.SortOrder)
	assert.Equal(t, entity.CategoryTypeDefault, out.CategoryType)
}

// La profundidad siempre se deriva del padre, nivel a nivel.
func TestCreate_ProfundidadDerivadaDelPadre(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)
	grandchild := mustCreate(t, uc, "Guillotina Doble", child.ID)

	assert.Equal(t, 1, child.Depth)
	assert.Equal(t, 2, grandchild.Depth)
}

// Padre inexistente → ErrParentNotFound.
func TestCreate_PadreInexistente(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	_, err := uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{
		Name:     "Huérfana",
		ParentID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

// Escenario 3 del diseño: hermano duplicado rechazado, solo queda uno.
func TestCreate_HermanoDuplicado(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	root := mustCreate(t, uc, "Ventanas", "")
	mustCreate(t, uc, "Vinilo", root.ID)

	_, err := uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{
		Name:     "Vinilo",
		ParentID: root.ID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	children, _ := store.ListChildren(testCompanyID, root.ID)
	assert.Len(t, children, 1, "solo debe existir una 'Vinilo' bajo 'Ventanas'")
}

// CategoryType en subcategorías se ignora y se fuerza default (política
// determinista: silenciosa, no rechazo).
func TestCreate_TipoIgnoradoEnSubcategoria(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	root := mustCreate(t, uc, "Ventanas", "")
	out, err := uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{
		Name:         "Vinilo",
		ParentID:     root.ID,
		CategoryType: entity.CategoryTypeDetail,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryTypeDefault, out.CategoryType)
}

// En raíces sí se honra el tipo.
func TestCreate_TipoEnRaiz(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	out, err := uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{
		Name:         "Detalles",
		CategoryType: entity.CategoryTypeDeepDrillDown,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryTypeDeepDrillDown, out.CategoryType)
}

// Nombre vacío o demasiado largo → ErrInvalidInput.
func TestCreate_NombreInvalido(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	_, err := uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}
	_, err = uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{Name: string(long)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Cada hermana nueva queda al final: las claves de orden crecen.
func TestCreate_OrdenAlFinal(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	a := mustCreate(t, uc, "A", "")
	b := mustCreate(t, uc, "B", "")
	c := mustCreate(t, uc, "C", "")

	assert.Less(t, a.SortOrder, b.SortOrder)
	assert.Less(t, b.SortOrder, c.SortOrder)
}

// ── Update ────────────────────────────────────────────────────────────────────

// Escenario 4 del diseño: dos clientes con la misma versión; el segundo
// choca y recibe la versión vigente con el último editor.
func TestUpdate_ConflictoDeVersiones(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	cat := mustCreate(t, uc, "Vinilo", "")

	// Cliente A renombra con la versión vigente.
	newName := "Vinilo Pro"
	updated, err := uc.Update(context.Background(), testCompanyID, testUserID, cat.ID, dto.UpdateCategoryRequest{
		ExpectedVersion: cat.Version,
		Name:            &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, cat.Version+1, updated.Version)

	// Cliente B intenta con la versión vieja.
	stale := "Vinilo Classic"
	_, err = uc.Update(context.Background(), testCompanyID, otherUserID, cat.ID, dto.UpdateCategoryRequest{
		ExpectedVersion: cat.Version,
		Name:            &stale,
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, updated.Version, conflict.CurrentVersion)
	assert.Equal(t, testUserID, conflict.LastModifiedBy)
}

// Renombrar hacia un nombre ya usado por un hermano activo → ErrDuplicateName.
func TestUpdate_RenombreDuplicado(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	root := mustCreate(t, uc, "Ventanas", "")
	mustCreate(t, uc, "Vinilo", root.ID)
	madera := mustCreate(t, uc, "Madera", root.ID)

	dup := "Vinilo"
	_, err := uc.Update(context.Background(), testCompanyID, testUserID, madera.ID, dto.UpdateCategoryRequest{
		ExpectedVersion: madera.Version,
		Name:            &dup,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

// CategoryType en una subcategoría se ignora sin error en Update.
func TestUpdate_TipoIgnoradoEnSubcategoria(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)

	detail := entity.CategoryTypeDetail
	out, err := uc.Update(context.Background(), testCompanyID, testUserID, child.ID, dto.UpdateCategoryRequest{
		ExpectedVersion: child.Version,
		CategoryType:    &detail,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryTypeDefault, out.CategoryType,
		"el tipo no es configurable fuera de la raíz")
	assert.Equal(t, child.Version+1, out.Version, "la escritura sí ocurre")
}

// Desactivar una categoría libera su nombre para nuevos hermanos.
func TestUpdate_DesactivarLiberaNombre(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	root := mustCreate(t, uc, "Ventanas", "")
	vinilo := mustCreate(t, uc, "Vinilo", root.ID)

	inactive := false
	_, err := uc.Update(context.Background(), testCompanyID, testUserID, vinilo.ID, dto.UpdateCategoryRequest{
		ExpectedVersion: vinilo.Version,
		IsActive:        &inactive,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), testCompanyID, testUserID, dto.CreateCategoryRequest{
		Name:     "Vinilo",
		ParentID: root.ID,
	})
	assert.NoError(t, err, "una homónima inactiva no bloquea el nombre")
}

// ── Move ──────────────────────────────────────────────────────────────────────

// Escenario 2 del diseño: mover un ancestro bajo su descendiente se rechaza
// y el árbol queda intacto.
func TestMove_CicloRechazado(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)
	grandchild := mustCreate(t, uc, "Guillotina Doble", child.ID)

	_, err := uc.Move(context.Background(), testCompanyID, testUserID, root.ID, dto.MoveCategoryRequest{
		NewParentID: grandchild.ID,
	})
	assert.ErrorIs(t, err, domain.ErrCircularReference)

	stored, _ := store.GetByID(testCompanyID, root.ID)
	assert.Empty(t, stored.ParentID, "el árbol no debe cambiar tras el rechazo")
	assert.Equal(t, 0, stored.Depth)
}

// Auto-referencia directa → ErrSelfParent.
func TestMove_AutoPadre(t *testing.T) {
	uc := newCategoryUC(newFakeStore())
	cat := mustCreate(t, uc, "Ventanas", "")

	_, err := uc.Move(context.Background(), testCompanyID, testUserID, cat.ID, dto.MoveCategoryRequest{
		NewParentID: cat.ID,
	})
	assert.ErrorIs(t, err, domain.ErrSelfParent)
}

// Mover un subárbol recalcula la profundidad de TODAS sus descendientes.
func TestMove_CascadaDeProfundidades(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	// Ventanas → Vinilo → Guillotina Doble, y una raíz destino aparte.
	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)
	grandchild := mustCreate(t, uc, "Guillotina Doble", child.ID)
	dest := mustCreate(t, uc, "Exteriores", "")

	moved, err := uc.Move(context.Background(), testCompanyID, testUserID, child.ID, dto.MoveCategoryRequest{
		NewParentID: dest.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, dest.ID, moved.ParentID)
	assert.Equal(t, 1, moved.Depth)

	storedGrandchild, _ := store.GetByID(testCompanyID, grandchild.ID)
	assert.Equal(t, 2, storedGrandchild.Depth,
		"la nieta debe seguir exactamente un nivel bajo su madre")

	// Invariante global: depth == parent.depth + 1 para todo el árbol.
	all, _ := store.ListByCompany(testCompanyID, repository.CategoryFilter{IncludeInactive: true})
	byID := make(map[string]*entity.Category, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}
	for _, c := range all {
		if c.ParentID == "" {
			assert.Equal(t, 0, c.Depth, "raíz %s", c.Name)
		} else {
			require.Contains(t, byID, c.ParentID)
			assert.Equal(t, byID[c.ParentID].Depth+1, c.Depth, "categoría %s", c.Name)
		}
	}
}

// Mover a la raíz (NewParentID vacío) funciona y deja depth 0.
func TestMove_HaciaRaiz(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)

	moved, err := uc.Move(context.Background(), testCompanyID, testUserID, child.ID, dto.MoveCategoryRequest{})
	require.NoError(t, err)
	assert.Empty(t, moved.ParentID)
	assert.Equal(t, 0, moved.Depth)
}

// Colisión de nombre bajo el nuevo padre → ErrDuplicateName.
func TestMove_NombreDuplicadoEnDestino(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	a := mustCreate(t, uc, "A", "")
	b := mustCreate(t, uc, "B", "")
	mustCreate(t, uc, "Vinilo", a.ID)
	viniloB := mustCreate(t, uc, "Vinilo", b.ID)

	_, err := uc.Move(context.Background(), testCompanyID, testUserID, viniloB.ID, dto.MoveCategoryRequest{
		NewParentID: a.ID,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

// ── Reorder ───────────────────────────────────────────────────────────────────

// El lote aplica claves nuevas; los ids inexistentes se omiten en silencio
// (clientes desfasados) y aplicar el mismo lote dos veces da el mismo orden.
func TestReorder_ToleranteEIdempotente(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	a := mustCreate(t, uc, "A", "")
	b := mustCreate(t, uc, "B", "")

	// Invertir el orden: B antes que A.
	batch := dto.ReorderCategoriesRequest{Items: []dto.ReorderItem{
		{ID: b.ID, SortOrder: "G"},
		{ID: a.ID, SortOrder: "V"},
		{ID: "ya-borrada", SortOrder: "Z"},
	}}

	out, err := uc.Reorder(context.Background(), testCompanyID, testUserID, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Applied)
	assert.Equal(t, 1, out.Skipped, "el id inexistente se omite sin tumbar el lote")

	orderAfterFirst := childOrder(t, store, "")
	assert.Equal(t, []string{b.ID, a.ID}, orderAfterFirst)

	// Idempotencia: repetir el lote produce exactamente el mismo orden.
	_, err = uc.Reorder(context.Background(), testCompanyID, testUserID, batch)
	require.NoError(t, err)
	assert.Equal(t, orderAfterFirst, childOrder(t, store, ""))
}

func TestReorder_LoteVacioInvalido(t *testing.T) {
	uc := newCategoryUC(newFakeStore())
	_, err := uc.Reorder(context.Background(), testCompanyID, testUserID, dto.ReorderCategoriesRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Delete ────────────────────────────────────────────────────────────────────

// Escenario 5 del diseño: con 5 ítems el borrado sin force se bloquea con los
// conteos; con force se borra todo, vínculos incluidos.
func TestDelete_DependientesYForce(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	cat := mustCreate(t, uc, "Guillotina Doble", "")
	store.items[cat.ID] = entity.ItemStats{Count: 5, TotalPrice: decimal.NewFromInt(1250)}

	_, err := uc.Delete(context.Background(), testCompanyID, testUserID, cat.ID, false)
	var deps *domain.DependentsError
	require.ErrorAs(t, err, &deps)
	assert.Equal(t, 5, deps.ItemCount)
	assert.Equal(t, 0, deps.ChildCount)

	// El rechazo no mutó nada.
	stored, _ := store.GetByID(testCompanyID, cat.ID)
	require.NotNil(t, stored)

	out, err := uc.Delete(context.Background(), testCompanyID, testUserID, cat.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, out.RemovedCategories)
	assert.Equal(t, 5, out.RemovedItemLinks)

	stored, _ = store.GetByID(testCompanyID, cat.ID)
	assert.Nil(t, stored)
	assert.Zero(t, store.items[cat.ID].Count, "los vínculos de ítems deben desaparecer")
}

// Sin hijas ni ítems el borrado no necesita force.
func TestDelete_SinDependientes(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	cat := mustCreate(t, uc, "Vacía", "")
	out, err := uc.Delete(context.Background(), testCompanyID, testUserID, cat.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, out.RemovedCategories)
	assert.Equal(t, 0, out.RemovedItemLinks)
}

// Con hijas, el conteo de dependientes llega al caller y con force cae el
// subárbol completo.
func TestDelete_SubarbolConForce(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)
	mustCreate(t, uc, "Guillotina Doble", child.ID)

	_, err := uc.Delete(context.Background(), testCompanyID, testUserID, root.ID, false)
	var deps *domain.DependentsError
	require.ErrorAs(t, err, &deps)
	assert.Equal(t, 1, deps.ChildCount, "cuenta hijas directas")

	out, err := uc.Delete(context.Background(), testCompanyID, testUserID, root.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 3, out.RemovedCategories)

	all, _ := store.ListByCompany(testCompanyID, repository.CategoryFilter{IncludeInactive: true})
	assert.Empty(t, all)
}

func TestDelete_NoEncontrada(t *testing.T) {
	uc := newCategoryUC(newFakeStore())
	_, err := uc.Delete(context.Background(), testCompanyID, testUserID, "nada", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Breadcrumb ────────────────────────────────────────────────────────────────

// Escenario 1 del diseño: la ruta de la nieta es raíz → hija → nieta.
func TestBreadcrumb(t *testing.T) {
	uc := newCategoryUC(newFakeStore())

	root := mustCreate(t, uc, "Ventanas", "")
	child := mustCreate(t, uc, "Vinilo", root.ID)
	grandchild := mustCreate(t, uc, "Guillotina Doble", child.ID)

	crumbs, err := uc.Breadcrumb(context.Background(), testCompanyID, grandchild.ID)
	require.NoError(t, err)

	names := make([]string, len(crumbs))
	for i, c := range crumbs {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Ventanas", "Vinilo", "Guillotina Doble"}, names)
}

// Un padre colgante (dato corrupto) se reporta, no cuelga el proceso.
func TestBreadcrumb_PadreColgante(t *testing.T) {
	store := newFakeStore()
	uc := newCategoryUC(store)

	store.categories["x"] = &entity.Category{
		ID: "x", CompanyID: testCompanyID, ParentID: "fantasma", Name: "Rota", IsActive: true,
	}

	_, err := uc.Breadcrumb(context.Background(), testCompanyID, "x")
	assert.ErrorIs(t, err, domain.ErrTreeCorrupted)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func childOrder(t *testing.T, store *fakeStore, parentID string) []string {
	t.Helper()
	children, err := store.ListChildren(testCompanyID, parentID)
	require.NoError(t, err)
	ids := make([]string, len(children))
	for i, c := range children {
		ids[i] = c.ID
	}
	return ids
}
