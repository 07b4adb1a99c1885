package tax

import (
	"github.com/shivbooks/books/internal/tax/repository"
	"github.com/shivbooks/books/internal/tax/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tax.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
