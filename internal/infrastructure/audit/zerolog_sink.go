package audit

import (
	"context"

	"github.com/jhoicas/Cotizador-api/internal/application/priceguide"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

var _ priceguide.AuditSink = (*ZerologSink)(nil)

// ZerologSink emite los eventos de auditoría del árbol como logs
// estructurados. Fire-and-forget: nunca falla ni bloquea la operación.
type ZerologSink struct {
	log *logger.Logger
}

// NewZerologSink construye el sink sobre el logger de la app.
func NewZerologSink(log *logger.Logger) *ZerologSink {
	return &ZerologSink{log: log}
}

// CategoryCreated registra la creación de una categoría.
func (s *ZerologSink) CategoryCreated(_ context.Context, actor string, category *entity.Category) {
	s.log.Info().
		Str("event", "category_created").
		Str("actor", actor).
		Str("company_id", category.CompanyID).
		Str("category_id", category.ID).
		Str("parent_id", category.ParentID).
		Str("name", category.Name).
		Int("depth", category.Depth).
		Msg("categoría creada")
}

// CategoryUpdated registra un update con los campos que cambiaron.
func (s *ZerologSink) CategoryUpdated(_ context.Context, actor string, before, after *entity.Category) {
	ev := s.log.Info().
		Str("event", "category_updated").
		Str("actor", actor).
		Str("company_id", after.CompanyID).
		Str("category_id", after.ID).
		Int("version", after.Version)
	if before.Name != after.Name {
		ev = ev.Str("old_name", before.Name).Str("new_name", after.Name)
	}
	if before.IsActive != after.IsActive {
		ev = ev.Bool("is_active", after.IsActive)
	}
	ev.Msg("categoría actualizada")
}

// CategoryMoved registra un movimiento con el padre anterior y el nuevo.
func (s *ZerologSink) CategoryMoved(_ context.Context, actor string, before, after *entity.Category) {
	s.log.Info().
		Str("event", "category_moved").
		Str("actor", actor).
		Str("company_id", after.CompanyID).
		Str("category_id", after.ID).
		Str("old_parent_id", before.ParentID).
		Str("new_parent_id", after.ParentID).
		Int("old_depth", before.Depth).
		Int("new_depth", after.Depth).
		Msg("categoría movida")
}

// CategoryDeleted registra el borrado con el tamaño del subárbol eliminado.
func (s *ZerologSink) CategoryDeleted(_ context.Context, actor string, category *entity.Category, removedCategories, removedLinks int) {
	s.log.Info().
		Str("event", "category_deleted").
		Str("actor", actor).
		Str("company_id", category.CompanyID).
		Str("category_id", category.ID).
		Str("name", category.Name).
		Int("removed_categories", removedCategories).
		Int("removed_item_links", removedLinks).
		Msg("categoría eliminada")
}

// CategoriesReordered registra un lote de reordenamiento.
func (s *ZerologSink) CategoriesReordered(_ context.Context, actor, companyID string, applied, skipped int) {
	s.log.Info().
		Str("event", "categories_reordered").
		Str("actor", actor).
		Str("company_id", companyID).
		Int("applied", applied).
		Int("skipped", skipped).
		Msg("categorías reordenadas")
}

// OfficesAssigned registra una asignación de oficinas a una raíz.
func (s *ZerologSink) OfficesAssigned(_ context.Context, actor, categoryID string, created int) {
	s.log.Info().
		Str("event", "offices_assigned").
		Str("actor", actor).
		Str("category_id", categoryID).
		Int("created", created).
		Msg("oficinas asignadas")
}

// OfficeUnassigned registra la eliminación de un par categoría-oficina.
func (s *ZerologSink) OfficeUnassigned(_ context.Context, actor, categoryID, officeID string) {
	s.log.Info().
		Str("event", "office_unassigned").
		Str("actor", actor).
		Str("category_id", categoryID).
		Str("office_id", officeID).
		Msg("oficina desasignada")
}
