// Package pdf implementa la representación imprimible de la guía de precios:
// el catálogo jerárquico de categorías con sus conteos de ítems y totales.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + NIT  │  "Guía de precios" + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría (indentada) | Ítems | Total               │
//	│    Ventanas                       30      $ 1.250,00        │
//	│      Vinilo                       10        $ 400,00        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de categorías / ítems / valor               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/application/priceguide"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ priceguide.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa priceguide.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalog genera el PDF del catálogo y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalog(
	_ context.Context,
	company *entity.Company,
	forest []*dto.TreeNode,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Guía de Precios", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	var totalCategories, totalItems int
	totalPrice := decimal.Zero
	for _, root := range forest {
		walkCategory(m, root, 0, &totalCategories)
		totalItems += root.ItemCount
		totalPrice = totalPrice.Add(root.TotalPrice)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(totalCategories, totalItems, totalPrice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT (izq) y título + fecha (der).
func headerRow(company *entity.Company) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.NIT, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("GUÍA DE PRECIOS", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fecha, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(7).Add(text.New("Categoría", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(2).Add(text.New("Ítems", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
	)
}

// walkCategory agrega la fila de un nodo y recorre sus hijas en preorden,
// indentando por profundidad.
func walkCategory(m core.Maroto, node *dto.TreeNode, level int, count *int) {
	*count++
	style := fontstyle.Normal
	size := 8.5
	if level == 0 {
		style = fontstyle.Bold
		size = 9
	}
	indent := strings.Repeat("    ", level)
	m.AddRows(row.New(5.5).Add(
		col.New(7).Add(text.New(indent+node.Name, props.Text{Style: style, Size: size})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", node.ItemCount), props.Text{Size: size, Align: align.Right})),
		col.New(3).Add(text.New("$ "+node.TotalPrice.StringFixed(2), props.Text{Size: size, Align: align.Right})),
	))
	for _, child := range node.Children {
		walkCategory(m, child, level+1, count)
	}
}

func summaryRow(categories, items int, total decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(7).Add(text.New(
			fmt.Sprintf("%d categorías · %d ítems", categories, items),
			props.Text{Size: 9, Color: colorGray, Top: 2},
		)),
		col.New(5).Add(text.New(
			"TOTAL: $ "+total.StringFixed(2),
			props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1},
		)),
	)
}
