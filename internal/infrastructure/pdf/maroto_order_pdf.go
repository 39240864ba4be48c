// Package pdf genera el documento PDF de detalle de pedido que descargan los
// administradores desde GET /orders/:order_id/invoice.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                     Detalles del Pedido                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INFORMACIÓN DEL CLIENTE: Nombre / ID / Teléfono / Dirección │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INFORMACIÓN DEL PEDIDO: ID / Servicio / Monto /             │
//	│                          Transferencia / Fecha               │
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

	"github.com/jhoicas/marketing-crm-api/internal/application/orders"
	"github.com/jhoicas/marketing-crm-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ orders.InvoicePDFGenerator = (*MarotoOrderPDFGenerator)(nil)

// MarotoOrderPDFGenerator implementa orders.InvoicePDFGenerator usando Maroto v2.
// Renderiza siempre en memoria; los bytes van directo al cliente HTTP.
type MarotoOrderPDFGenerator struct{}

// NewMarotoOrderPDFGenerator construye el generador.
func NewMarotoOrderPDFGenerator() *MarotoOrderPDFGenerator { return &MarotoOrderPDFGenerator{} }

// GenerateOrderPDF genera el PDF del pedido y devuelve sus bytes.
func (g *MarotoOrderPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	client *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Detalles del Pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Información del Cliente:"))
	m.AddRows(
		fieldRow("Nombre: "+orDefault(client.Name, "Sin Nombre")),
		fieldRow(fmt.Sprintf("Tipo de ID: %s %s", orDefault(client.IDType, "N/A"), orDefault(client.IDNumber, "N/A"))),
		fieldRow("Teléfono: "+orDefault(client.Phone, "No disponible")),
		fieldRow("Dirección: "+orDefault(client.Address, "No disponible")),
	)
	m.AddRows(line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionRow("Información del Pedido:"))
	m.AddRows(
		fieldRow("ID del Pedido: "+order.OrderID),
		fieldRow("Tipo de Servicio: "+order.ServiceType),
		fieldRow("Monto: $"+order.Amount.StringFixed(2)),
		fieldRow("ID de Transferencia: "+order.TransferID),
		fieldRow("Fecha del Pedido: "+order.CreatedAt.Format("02-01-2006")),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Detalles del Pedido", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorPrimary,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
		),
	)
}

func fieldRow(value string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(
			text.New(value, props.Text{Size: 10, Top: 1}),
		),
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
