package priceguide_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// fakeStore implementa en memoria los puertos de persistencia y el TxRunner
// para los tests de casos de uso. Las "transacciones" son directas: la
// atomicidad real la cubren los tests de infraestructura, aquí interesa la
// lógica de dominio.
type fakeStore struct {
	categories  map[string]*entity.Category
	items       map[string]entity.ItemStats // categoryID → stats
	assignments map[string]map[string]bool  // categoryID → set de officeIDs
	offices     map[string]*entity.Office
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories:  make(map[string]*entity.Category),
		items:       make(map[string]entity.ItemStats),
		assignments: make(map[string]map[string]bool),
		offices:     make(map[string]*entity.Office),
	}
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

func (f *fakeStore) Run(_ context.Context, fn func(
	catRepo repository.CategoryRepository,
	itemRepo repository.ItemLinkRepository,
	assignRepo repository.AssignmentRepository,
) error) error {
	return fn(f, f, &fakeAssignRepo{store: f})
}

// ── CategoryRepository ────────────────────────────────────────────────────────

func (f *fakeStore) Create(category *entity.Category) error {
	c := *category
	f.categories[c.ID] = &c
	return nil
}

func (f *fakeStore) GetByID(companyID, id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok || c.CompanyID != companyID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeStore) ListChildren(companyID, parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if c.CompanyID == companyID && c.ParentID == parentID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortCategories(out)
	return out, nil
}

func (f *fakeStore) FindSiblingByName(companyID, parentID, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.CompanyID == companyID && c.ParentID == parentID && c.IsActive && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CountChildren(companyID, id string) (int, error) {
	n := 0
	for _, c := range f.categories {
		if c.CompanyID == companyID && c.ParentID == id {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ListByCompany(companyID string, filter repository.CategoryFilter) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if c.CompanyID != companyID {
			continue
		}
		if !filter.IncludeInactive && !c.IsActive {
			continue
		}
		if filter.CategoryType != "" && c.CategoryType != filter.CategoryType {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sortCategories(out)
	return out, nil
}

func (f *fakeStore) Save(category *entity.Category, expectedVersion int) error {
	stored, ok := f.categories[category.ID]
	if !ok || stored.CompanyID != category.CompanyID {
		return domain.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return &domain.ConflictError{CurrentVersion: stored.Version, LastModifiedBy: stored.LastModifiedBy}
	}
	category.Version = expectedVersion + 1
	category.UpdatedAt = time.Now()
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeStore) SaveSortOrder(companyID, id, sortOrder, userID string) (bool, error) {
	stored, ok := f.categories[id]
	if !ok || stored.CompanyID != companyID {
		return false, nil
	}
	stored.SortOrder = sortOrder
	stored.LastModifiedBy = userID
	stored.Version++
	stored.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeStore) UpdateDepths(companyID string, updates []repository.DepthUpdate) error {
	for _, u := range updates {
		if c, ok := f.categories[u.ID]; ok && c.CompanyID == companyID {
			c.Depth = u.Depth
		}
	}
	return nil
}

func (f *fakeStore) ListSubtreeIDs(companyID, rootID string) ([]string, error) {
	ids := []string{rootID}
	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, c := range f.categories {
			if c.CompanyID == companyID && c.ParentID == current {
				ids = append(ids, c.ID)
				queue = append(queue, c.ID)
			}
		}
	}
	return ids, nil
}

func (f *fakeStore) DeleteMany(companyID string, ids []string) error {
	for _, id := range ids {
		if c, ok := f.categories[id]; ok && c.CompanyID == companyID {
			delete(f.categories, id)
		}
	}
	return nil
}

// ── ItemLinkRepository ────────────────────────────────────────────────────────

func (f *fakeStore) StatsForCategory(_, categoryID string) (entity.ItemStats, error) {
	return f.items[categoryID], nil
}

func (f *fakeStore) StatsByCategory(string) (map[string]entity.ItemStats, error) {
	out := make(map[string]entity.ItemStats, len(f.items))
	for k, v := range f.items {
		out[k] = v
	}
	return out, nil
}

func (f *fakeStore) DeleteForCategories(companyID string, categoryIDs []string) (int, error) {
	removed := 0
	for _, id := range categoryIDs {
		removed += f.items[id].Count
		delete(f.items, id)
	}
	return removed, nil
}

// ── AssignmentRepository ──────────────────────────────────────────────────────

// fakeAssignRepo envuelve fakeStore porque ItemLinkRepository y
// AssignmentRepository declaran métodos homónimos con distinta firma.
type fakeAssignRepo struct {
	store *fakeStore
}

func (r *fakeAssignRepo) InsertMissing(categoryID string, officeIDs []string) (int, error) {
	set := r.store.assignments[categoryID]
	if set == nil {
		set = make(map[string]bool)
		r.store.assignments[categoryID] = set
	}
	created := 0
	for _, id := range officeIDs {
		if !set[id] {
			set[id] = true
			created++
		}
	}
	return created, nil
}

func (r *fakeAssignRepo) Delete(categoryID, officeID string) (bool, error) {
	set := r.store.assignments[categoryID]
	if set == nil || !set[officeID] {
		return false, nil
	}
	delete(set, officeID)
	return true, nil
}

func (r *fakeAssignRepo) ListOfficeIDs(categoryID string) ([]string, error) {
	var out []string
	for id := range r.store.assignments[categoryID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeAssignRepo) DeleteForCategories(categoryIDs []string) error {
	for _, id := range categoryIDs {
		delete(r.store.assignments, id)
	}
	return nil
}

// ── OfficeRepository (para AssignmentUseCase) ─────────────────────────────────

type fakeOfficeRepo struct {
	store *fakeStore
}

func (r *fakeOfficeRepo) Create(office *entity.Office) error {
	cp := *office
	r.store.offices[office.ID] = &cp
	return nil
}

func (r *fakeOfficeRepo) GetByID(id string) (*entity.Office, error) {
	o, ok := r.store.offices[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfficeRepo) Update(office *entity.Office) error { return nil }

func (r *fakeOfficeRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Office, error) {
	var out []*entity.Office
	for _, o := range r.store.offices {
		if o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOfficeRepo) Delete(id string) error {
	delete(r.store.offices, id)
	return nil
}

func (r *fakeOfficeRepo) FindAll(companyID string, ids []string) ([]*entity.Office, error) {
	var out []*entity.Office
	for _, id := range ids {
		if o, ok := r.store.offices[id]; ok && o.CompanyID == companyID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── AuditSink nulo ────────────────────────────────────────────────────────────

type nopAudit struct{}

func (nopAudit) CategoryCreated(context.Context, string, *entity.Category) {}
func (nopAudit) CategoryUpdated(context.Context, string, *entity.Category, *entity.Category) {
}
func (nopAudit) CategoryMoved(context.Context, string, *entity.Category, *entity.Category) {}
func (nopAudit) CategoryDeleted(context.Context, string, *entity.Category, int, int)      {}
func (nopAudit) CategoriesReordered(context.Context, string, string, int, int)            {}
func (nopAudit) OfficesAssigned(context.Context, string, string, int)                     {}
func (nopAudit) OfficeUnassigned(context.Context, string, string, string)                 {}

// ── Helpers ───────────────────────────────────────────────────────────────────

func sortCategories(cats []*entity.Category) {
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return cats[i].ID < cats[j].ID
	})
}
