// Package priceguide implementa los casos de uso del árbol de categorías de
// la guía de precios: altas, ediciones con concurrencia optimista,
// movimientos con cascada de profundidades, reordenamiento fraccional,
// borrados con dependientes y lecturas de árbol/breadcrumb.
package priceguide

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
	"github.com/jhoicas/Cotizador-api/internal/domain/tree"
	"github.com/jhoicas/Cotizador-api/pkg/orderkey"
)

// CategoryUseCase casos de uso del árbol de categorías. Las mutaciones corren
// dentro del TxRunner; las lecturas (Tree, Breadcrumb) usan los repositorios
// atados al pool.
type CategoryUseCase struct {
	txRunner TxRunner
	catRepo  repository.CategoryRepository
	itemRepo repository.ItemLinkRepository
	audit    AuditSink
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	txRunner TxRunner,
	catRepo repository.CategoryRepository,
	itemRepo repository.ItemLinkRepository,
	audit AuditSink,
) *CategoryUseCase {
	return &CategoryUseCase{
		txRunner: txRunner,
		catRepo:  catRepo,
		itemRepo: itemRepo,
		audit:    audit,
	}
}

// Create crea una categoría bajo parentID (o como raíz si viene vacío).
// La nueva categoría queda al final de sus hermanos y con Version = 1.
func (uc *CategoryUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !validName(in.Name) {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryType != "" && !entity.ValidCategoryType(in.CategoryType) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Category
	err := uc.txRunner.Run(ctx, func(
		cats repository.CategoryRepository,
		_ repository.ItemLinkRepository,
		_ repository.AssignmentRepository,
	) error {
		var parent *entity.Category
		if in.ParentID != "" {
			p, err := cats.GetByID(companyID, in.ParentID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrParentNotFound
			}
			parent = p
		}

		if dup, err := cats.FindSiblingByName(companyID, in.ParentID, in.Name); err != nil {
			return err
		} else if dup != nil {
			return domain.ErrDuplicateName
		}

		siblings, err := cats.ListChildren(companyID, in.ParentID)
		if err != nil {
			return err
		}
		sortOrder, err := orderkey.Between(lastSortKey(siblings, ""), "")
		if err != nil {
			return err
		}

		depth := tree.ComputeDepth(parent)
		categoryType := in.CategoryType
		if categoryType == "" || !tree.CanSetCategoryType(depth) {
			// En subcategorías el tipo no es configurable: se fuerza default.
			categoryType = entity.CategoryTypeDefault
		}

		now := time.Now()
		created = &entity.Category{
			ID:             uuid.New().String(),
			CompanyID:      companyID,
			ParentID:       in.ParentID,
			Name:           in.Name,
			Depth:          depth,
			SortOrder:      sortOrder,
			CategoryType:   categoryType,
			IsActive:       true,
			Version:        1,
			LastModifiedBy: userID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		return cats.Create(created)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.CategoryCreated(ctx, userID, created)
	return toCategoryResponse(created), nil
}

// Update edita nombre/tipo/estado con compare-and-swap sobre Version.
// Un mismatch devuelve *domain.ConflictError con la versión actual y el
// último editor. CategoryType solo se honra en raíces; en subcategorías se
// ignora en silencio (comportamiento determinista, cubierto por tests).
func (uc *CategoryUseCase) Update(ctx context.Context, companyID, userID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.ExpectedVersion <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != nil && !validName(*in.Name) {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryType != nil && !entity.ValidCategoryType(*in.CategoryType) {
		return nil, domain.ErrInvalidInput
	}

	var before, after *entity.Category
	err := uc.txRunner.Run(ctx, func(
		cats repository.CategoryRepository,
		_ repository.ItemLinkRepository,
		_ repository.AssignmentRepository,
	) error {
		cat, err := cats.GetByID(companyID, id)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.ErrNotFound
		}
		if cat.Version != in.ExpectedVersion {
			return &domain.ConflictError{CurrentVersion: cat.Version, LastModifiedBy: cat.LastModifiedBy}
		}
		snapshot := *cat
		before = &snapshot

		if in.Name != nil && *in.Name != cat.Name {
			siblings, err := cats.ListChildren(companyID, cat.ParentID)
			if err != nil {
				return err
			}
			if tree.IsDuplicateSibling(*in.Name, siblings, cat.ID) {
				return domain.ErrDuplicateName
			}
			cat.Name = *in.Name
		}
		if in.CategoryType != nil && tree.CanSetCategoryType(cat.Depth) {
			cat.CategoryType = *in.CategoryType
		}
		if in.IsActive != nil {
			cat.IsActive = *in.IsActive
		}

		cat.LastModifiedBy = userID
		if err := cats.Save(cat, in.ExpectedVersion); err != nil {
			return err
		}
		after = cat
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.CategoryUpdated(ctx, userID, before, after)
	return toCategoryResponse(after), nil
}

// Move reparenta una categoría y recalcula en cascada la profundidad de todo
// su subárbol, todo dentro de una sola transacción: un fallo a mitad de la
// cascada no deja profundidades parciales.
func (uc *CategoryUseCase) Move(ctx context.Context, companyID, userID, id string, in dto.MoveCategoryRequest) (*dto.CategoryResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.NewParentID == id {
		return nil, domain.ErrSelfParent
	}

	var before, after *entity.Category
	err := uc.txRunner.Run(ctx, func(
		cats repository.CategoryRepository,
		_ repository.ItemLinkRepository,
		_ repository.AssignmentRepository,
	) error {
		cat, err := cats.GetByID(companyID, id)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.ErrNotFound
		}
		snapshot := *cat
		before = &snapshot

		// La cadena de ancestros se lee dentro de la transacción: dos Move
		// concurrentes sobre subárboles solapados no pueden cerrar un ciclo.
		cycle, err := tree.WouldCreateCycle(id, in.NewParentID, func(pid string) (*entity.Category, error) {
			return cats.GetByID(companyID, pid)
		})
		if err != nil {
			return err
		}
		if cycle {
			return domain.ErrCircularReference
		}

		var parent *entity.Category
		if in.NewParentID != "" {
			p, err := cats.GetByID(companyID, in.NewParentID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrParentNotFound
			}
			parent = p
		}

		siblings, err := cats.ListChildren(companyID, in.NewParentID)
		if err != nil {
			return err
		}
		if tree.IsDuplicateSibling(cat.Name, siblings, cat.ID) {
			return domain.ErrDuplicateName
		}

		sortOrder := in.SortOrder
		if sortOrder == "" {
			sortOrder, err = orderkey.Between(lastSortKey(siblings, cat.ID), "")
			if err != nil {
				return err
			}
		}

		cat.ParentID = in.NewParentID
		cat.Depth = tree.ComputeDepth(parent)
		cat.SortOrder = sortOrder
		cat.LastModifiedBy = userID
		if err := cats.Save(cat, cat.Version); err != nil {
			return err
		}

		// Cascada: las descendientes conservan su padre, pero su profundidad
		// se deriva de la nueva posición del subárbol. El check de versión no
		// aplica aquí: son consecuencia interna de un cambio ya validado.
		updates, err := descendantDepths(companyID, cat, cats)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := cats.UpdateDepths(companyID, updates); err != nil {
				return err
			}
		}
		after = cat
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.CategoryMoved(ctx, userID, before, after)
	return toCategoryResponse(after), nil
}

// Reorder aplica en lote nuevas claves de orden a un conjunto de hermanos.
// Los ids que no resuelven se omiten en silencio: en un editor multiusuario
// es esperable que el cliente traiga elementos ya borrados por otro, y eso no
// debe tumbar el lote completo. El lote entero comitea de forma atómica y la
// operación es idempotente.
func (uc *CategoryUseCase) Reorder(ctx context.Context, companyID, userID string, in dto.ReorderCategoriesRequest) (*dto.ReorderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ID == "" || item.SortOrder == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	out := &dto.ReorderResponse{}
	err := uc.txRunner.Run(ctx, func(
		cats repository.CategoryRepository,
		_ repository.ItemLinkRepository,
		_ repository.AssignmentRepository,
	) error {
		for _, item := range in.Items {
			applied, err := cats.SaveSortOrder(companyID, item.ID, item.SortOrder, userID)
			if err != nil {
				return err
			}
			if applied {
				out.Applied++
			} else {
				out.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.CategoriesReordered(ctx, userID, companyID, out.Applied, out.Skipped)
	return out, nil
}

// Delete borra una categoría. Con dependientes (hijas o ítems) y sin force
// devuelve *domain.DependentsError con los conteos y no muta nada; con force
// borra el subárbol completo junto con los vínculos de ítems y asignaciones
// de oficinas, en una sola transacción.
func (uc *CategoryUseCase) Delete(ctx context.Context, companyID, userID, id string, force bool) (*dto.DeleteCategoryResponse, error) {
	var removed *entity.Category
	out := &dto.DeleteCategoryResponse{}
	err := uc.txRunner.Run(ctx, func(
		cats repository.CategoryRepository,
		items repository.ItemLinkRepository,
		assigns repository.AssignmentRepository,
	) error {
		cat, err := cats.GetByID(companyID, id)
		if err != nil {
			return err
		}
		if cat == nil {
			return domain.ErrNotFound
		}

		childCount, err := cats.CountChildren(companyID, id)
		if err != nil {
			return err
		}
		stats, err := items.StatsForCategory(companyID, id)
		if err != nil {
			return err
		}
		if (childCount > 0 || stats.Count > 0) && !force {
			return &domain.DependentsError{ChildCount: childCount, ItemCount: stats.Count}
		}

		subtree, err := cats.ListSubtreeIDs(companyID, id)
		if err != nil {
			return err
		}
		links, err := items.DeleteForCategories(companyID, subtree)
		if err != nil {
			return err
		}
		if err := assigns.DeleteForCategories(subtree); err != nil {
			return err
		}
		if err := cats.DeleteMany(companyID, subtree); err != nil {
			return err
		}

		removed = cat
		out.RemovedCategories = len(subtree)
		out.RemovedItemLinks = links
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.CategoryDeleted(ctx, userID, removed, out.RemovedCategories, out.RemovedItemLinks)
	return out, nil
}

// Breadcrumb devuelve la ruta raíz→categoría. El recorrido hacia arriba es
// iterativo y acotado: una cadena que exceda la cota o un padre que no
// resuelva se reportan como ErrTreeCorrupted, jamás como un bucle colgado.
func (uc *CategoryUseCase) Breadcrumb(_ context.Context, companyID, id string) ([]dto.BreadcrumbEntry, error) {
	cat, err := uc.catRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}

	entries := []dto.BreadcrumbEntry{{ID: cat.ID, Name: cat.Name}}
	current := cat
	for i := 0; i < entity.MaxCategoryDepth; i++ {
		if current.ParentID == "" {
			return entries, nil
		}
		parent, err := uc.catRepo.GetByID(companyID, current.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrTreeCorrupted
		}
		entries = append([]dto.BreadcrumbEntry{{ID: parent.ID, Name: parent.Name}}, entries...)
		current = parent
	}
	return nil, domain.ErrTreeCorrupted
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func validName(name string) bool {
	return len(name) >= 1 && len(name) <= 255
}

// lastSortKey devuelve la clave del último hermano (la lista viene ordenada
// por sort_order) excluyendo opcionalmente la categoría en movimiento.
func lastSortKey(siblings []*entity.Category, excludeID string) string {
	last := ""
	for _, s := range siblings {
		if s.ID == excludeID {
			continue
		}
		last = s.SortOrder
	}
	return last
}

// descendantDepths recalcula la profundidad de todas las descendientes de
// root (ya movida) recorriendo el subárbol en anchura: el padre siempre se
// visita antes que sus hijas, así que cada profundidad sale de la del padre
// ya recalculada. El recorrido usa una sola lectura del árbol de la empresa.
func descendantDepths(companyID string, root *entity.Category, cats repository.CategoryRepository) ([]repository.DepthUpdate, error) {
	all, err := cats.ListByCompany(companyID, repository.CategoryFilter{IncludeInactive: true})
	if err != nil {
		return nil, err
	}
	children := make(map[string][]*entity.Category, len(all))
	for _, c := range all {
		if c.ParentID != "" {
			children[c.ParentID] = append(children[c.ParentID], c)
		}
	}

	var updates []repository.DepthUpdate
	type frame struct {
		id    string
		depth int
	}
	queue := []frame{{id: root.ID, depth: root.Depth}}
	visited := map[string]bool{root.ID: true}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		for _, child := range children[f.id] {
			if visited[child.ID] {
				// Dato corrupto (ciclo); no repetir nodos.
				return nil, domain.ErrTreeCorrupted
			}
			visited[child.ID] = true
			updates = append(updates, repository.DepthUpdate{ID: child.ID, Depth: f.depth + 1})
			queue = append(queue, frame{id: child.ID, depth: f.depth + 1})
		}
	}
	return updates, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:             c.ID,
		CompanyID:      c.CompanyID,
		ParentID:       c.ParentID,
		Name:           c.Name,
		Depth:          c.Depth,
		SortOrder:      c.SortOrder,
		CategoryType:   c.CategoryType,
		IsActive:       c.IsActive,
		Version:        c.Version,
		LastModifiedBy: c.LastModifiedBy,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
