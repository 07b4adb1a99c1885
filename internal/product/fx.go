package product

import (
	"github.com/shivbooks/books/internal/product/repository"
	"github.com/shivbooks/books/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
