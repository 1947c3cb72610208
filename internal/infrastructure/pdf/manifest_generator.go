// Package pdf genera el romaneio (manifiesto de remessa) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ROMANEIO + N° Remessa  │  Fecha                     │
//	│  DESTINO + Observación                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Produto | Unid. | Qtd. | Preço Unit. | Subtotal      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DA REMESSA                                            │
//	│  QR con el ID de la remessa + firma de recepción             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/estoque-api/internal/application/shipment"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

var _ shipment.ManifestGenerator = (*ManifestGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ManifestGenerator implementa shipment.ManifestGenerator usando Maroto v2.
type ManifestGenerator struct {
	appName string
	printer *message.Printer
}

// NewManifestGenerator construye el generador. Los importes se formatean en pt-BR.
func NewManifestGenerator(appName string) *ManifestGenerator {
	return &ManifestGenerator{appName: appName, printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// GenerateManifest genera el PDF y devuelve sus bytes.
func (g *ManifestGenerator) GenerateManifest(_ context.Context, s *entity.ShipmentWithItems, total decimal.Decimal) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Romaneio de remessa", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(s))
	m.AddRows(destinationRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRows(s.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalRow(total))
	m.AddRows(line.NewRow(4))
	m.AddRows(receiptRow(s.ID))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar romaneio: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *ManifestGenerator) headerRow(s *entity.ShipmentWithItems) core.Row {
	date := "—"
	if s.Date != nil {
		date = s.Date.Format("02/01/2006")
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("ROMANEIO DE REMESSA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Remessa "+s.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Data: "+date, props.Text{Size: 9, Align: align.Right, Top: 8}),
		),
	)
}

func destinationRow(s *entity.ShipmentWithItems) core.Row {
	obs := "—"
	if s.Observation != nil && *s.Observation != "" {
		obs = *s.Observation
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DESTINO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(s.Destination, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			text.New("Observação: "+obs, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 5, align.Left),
		h("Unid.", 1, align.Center),
		h("Qtd.", 2, align.Right),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func (g *ManifestGenerator) itemRows(items []entity.ShipmentItemView) []core.Row {
	if len(items) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New(shipment.EmptyShipmentProduct, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
		))}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		cell := func(s string, a align.Type) core.Component {
			return text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
		}
		rows = append(rows, row.New(7).Add(
			col.New(5).Add(cell(nonEmpty(it.ProductName, "N/A"), align.Left)),
			col.New(1).Add(cell(nonEmpty(it.UnitMeasure, "—"), align.Center)),
			col.New(2).Add(cell(g.quantity(it.Quantity), align.Right)),
			col.New(2).Add(cell(g.Money(it.UnitPrice), align.Right)),
			col.New(2).Add(cell(g.Money(it.Subtotal), align.Right)),
		))
	}
	return rows
}

func (g *ManifestGenerator) totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DA REMESSA:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New(g.Money(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// receiptRow QR con el ID de la remessa y espacio para la firma de quien recibe.
func receiptRow(shipmentID string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(shipmentID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Recebido por: ________________________________", props.Text{Size: 9, Top: 12, Left: 4}),
			text.New("Data: ____/____/________", props.Text{Size: 9, Top: 22, Left: 4}),
		),
	)
}

// Money formatea un importe como "R$ 1.234,50".
func (g *ManifestGenerator) Money(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return g.printer.Sprintf("R$ %v", number.Decimal(f, number.Scale(2)))
}

func (g *ManifestGenerator) quantity(v decimal.Decimal) string {
	f, _ := v.Float64()
	return g.printer.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(3)))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
