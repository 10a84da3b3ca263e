// Package pdf genera el recibo PDF de una orden con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Recibo + N° de orden + fecha       │
//	│  ─────────────────────────────────────────  │
//	│  CLIENTE: nombre / email / teléfono         │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Producto | Precio                   │
//	│  ─────────────────────────────────────────  │
//	│  TOTAL                                      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/crm-api/internal/application/usecase"
	"github.com/jhoicas/crm-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateOrderReceipt genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateOrderReceipt(
	_ context.Context,
	order *entity.Order,
	customer *entity.Customer,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de orden", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		text.NewCol(6, "Recibo de orden", props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
		}),
		text.NewCol(6,
			fmt.Sprintf("Orden %s\n%s", order.ID, order.OrderDate.Format("2006-01-02 15:04")),
			props.Text{Size: 9, Align: align.Right, Color: colorGray},
		),
	)
}

func customerRow(customer *entity.Customer) core.Row {
	contact := customer.Email
	if customer.Phone != "" {
		contact += " · " + customer.Phone
	}
	return row.New(12).Add(
		text.NewCol(12,
			fmt.Sprintf("Cliente: %s\n%s", customer.Name, contact),
			props.Text{Size: 9},
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		text.NewCol(8, "Producto", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(4, "Precio", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
}

func productRow(product *entity.Product) core.Row {
	return row.New(6).Add(
		text.NewCol(8, product.Name, props.Text{Size: 9}),
		text.NewCol(4, product.Price.StringFixed(2), props.Text{Size: 9, Align: align.Right}),
	)
}

func totalRow(order *entity.Order) core.Row {
	return row.New(8).Add(
		text.NewCol(8, "TOTAL", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(4, order.TotalAmount.StringFixed(2), props.Text{
			Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
		}),
	)
}
