package order

import (
	"github.com/shivbooks/books/internal/order/repository"
	"github.com/shivbooks/books/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
