package billing

import (
	"github.com/shivbooks/books/internal/billing/repository"
	"github.com/shivbooks/books/internal/billing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
