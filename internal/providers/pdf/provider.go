// Package pdf renders billing and settlement documents as PDFs.
package pdf

import (
	"context"
	"io"

	billingdomain "github.com/shivbooks/books/internal/billing/domain"
	settlementdomain "github.com/shivbooks/books/internal/settlement/domain"
	"go.uber.org/fx"
)

type Provider interface {
	RenderInvoice(ctx context.Context, invoice billingdomain.CustomerInvoice) (io.Reader, error)
	RenderReceipt(ctx context.Context, receipt settlementdomain.Receipt) (io.Reader, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
