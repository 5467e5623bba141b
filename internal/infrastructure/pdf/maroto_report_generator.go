// Package pdf implementa el reporte imprimible de una corrida de optimización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título  │  Run ID + Fecha de corrida               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SNAPSHOT: SKUs / Ubicaciones / Unidades / Valor             │
//	│  ESTADOS: Críticos | Bajos | Adecuados | Excedentes          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Órdenes de compra recomendadas                       │
//	│  TABLA: Traslados recomendados                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Valor de compras / Ahorro por traslados            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/Optimizador-api/internal/application/optimization"
	"github.com/jhoicas/Optimizador-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ optimization.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa optimization.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRecommendationsPDF genera el reporte de la corrida y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRecommendationsPDF(
	_ context.Context,
	result *entity.PipelineResult,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Optimización de Inventario", true).
		WithAuthor("Optimizador de Inventario", true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(result))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(snapshotRow(result.Snapshot))
	m.AddRows(statusBandRow(result.SafetyStock))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Órdenes de compra
	m.AddRows(sectionTitleRow("ÓRDENES DE COMPRA RECOMENDADAS"))
	if len(result.Allocation.PurchaseOrders) == 0 {
		m.AddRows(emptySectionRow("Sin órdenes de compra en esta corrida."))
	} else {
		m.AddRows(poHeaderRow())
		for _, r := range poRows(result.Allocation.PurchaseOrders) {
			m.AddRows(r)
		}
	}

	// Traslados
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("TRASLADOS RECOMENDADOS"))
	if len(result.Allocation.Transfers) == 0 {
		m.AddRows(emptySectionRow("Sin traslados en esta corrida."))
	} else {
		m.AddRows(transferHeaderRow())
		for _, r := range transferRows(result.Allocation.Transfers) {
			m.AddRows(r)
		}
	}

	// Totales
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(result.Allocation.Summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y run id + fecha de corrida (der).
func headerRow(result *entity.PipelineResult) core.Row {
	fecha := result.StartedAt.Format("02/01/2006 15:04 UTC")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("REPORTE DE OPTIMIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Planeación de inventario y reabastecimiento", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CORRIDA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(result.RunID, props.Text{
				Size: 7, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// snapshotRow: totales del snapshot de inventario en una línea.
func snapshotRow(snapshot entity.InventorySnapshot) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SNAPSHOT DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("SKUs: %d   |   Ubicaciones: %d   |   Unidades: %s   |   Valor: $%s",
				snapshot.TotalSKUs,
				snapshot.TotalLocations,
				thousands(fmt.Sprintf("%d", snapshot.Summary.TotalUnits)),
				money(snapshot.Summary.TotalValue),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// statusBandRow: conteo de productos por estado de stock.
func statusBandRow(ss entity.SafetyStockResult) core.Row {
	cell := func(label string, count int, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: color, Top: 1,
			}),
			text.New(fmt.Sprintf("%d", count), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		cell("CRÍTICOS", ss.Summary.CriticalStockItems, colorCritical),
		cell("BAJOS", ss.Summary.LowStockItems, colorPrimary),
		cell("ADECUADOS", ss.Summary.AdequateStockItems, colorGray),
		cell("EXCEDENTES", ss.Summary.ExcessStockItems, colorGray),
	)
}

// sectionTitleRow: título de sección.
func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// emptySectionRow: marcador de sección sin filas.
func emptySectionRow(msg string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray}),
	))
}

// poHeaderRow: cabecera de la tabla de órdenes de compra.
func poHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Stock", 1, align.Right),
		h("ROP", 1, align.Right),
		h("Cant.", 1, align.Right),
		h("Proveedor", 3, align.Left),
		h("Prior.", 1, align.Center),
		h("Valor", 2, align.Right),
	)
}

// poRows: una fila por orden de compra recomendada.
func poRows(orders []entity.ReorderRecommendation) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, po := range orders {
		priorityColor := colorGray
		if po.PriorityLabel == entity.PriorityLabelCritical {
			priorityColor = colorCritical
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				po.ProductID,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", po.CurrentStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", po.ReorderPoint),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", po.RecommendedOrderQty),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(po.SupplierName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				po.PriorityLabel,
				props.Text{Size: 7, Align: align.Center, Top: 1, Color: priorityColor},
			)),
			col.New(2).Add(text.New(
				"$"+money(po.TotalOrderValue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// transferHeaderRow: cabecera de la tabla de traslados.
func transferHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Desde", 3, align.Left),
		h("Hacia", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Ahorro", 2, align.Right),
	)
}

// transferRows: una fila por traslado recomendado.
func transferRows(transfers []entity.TransferRecommendation) []core.Row {
	result := make([]core.Row, 0, len(transfers))
	for _, t := range transfers {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				t.ProductID,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				t.FromLocationName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				t.ToLocationName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", t.TransferQuantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+money(t.CostSavings),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(summary entity.AllocationSummary) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(4).Add(
			label("Unidades por traslado:"),
			label("Unidades por compra:"),
			grandLabel("AHORRO POR TRASLADOS:"),
		),
		col.New(3).Add(
			value(thousands(fmt.Sprintf("%d", summary.UnitsViaTransfer))),
			value(thousands(fmt.Sprintf("%d", summary.UnitsViaPurchase))),
			grandValue("$"+money(summary.CostSavingsFromTransfers)),
		),
		col.New(2), // espacio derecho
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea un decimal sin decimales y con puntos de miles.
func money(d decimal.Decimal) string {
	return thousands(d.StringFixed(0))
}

// thousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func thousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
