package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
)

func (p *marotoProvider) RenderReceipt(ctx context.Context, receipt settlementdomain.Receipt) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, "Receipt", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(20,
		col.New(6).Add(
			text.New(fmt.Sprintf("Receipt number: RCT-%d", receipt.ID), props.Text{Top: 0}),
			text.New(fmt.Sprintf("Against invoice: INV-%d", receipt.CustomerInvoiceID), props.Text{Top: 4}),
			text.New("Date paid: "+receipt.ReceiptDate, props.Text{Top: 8}),
		),
		col.New(6),
	)

	m.AddRow(25,
		col.New(6).Add(
			text.New(p.businessName, props.Text{Style: fontstyle.Bold}),
		),
		col.New(6).Add(
			text.New("Received from", props.Text{Style: fontstyle.Bold}),
			text.New(receipt.Customer.Name, props.Text{Top: 5}),
			text.New(receipt.Customer.Email, props.Text{Top: 9}),
		),
	)

	m.AddRow(15,
		text.NewCol(12, receipt.Amount.StringFixed(2)+" paid on "+receipt.ReceiptDate, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Top:   5,
		}),
	)

	if receipt.Method != "" {
		m.AddRow(10,
			text.NewCol(12, "Payment method: "+receipt.Method, props.Text{Size: 9}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}
