package settlement

import (
	"github.com/shivbooks/books/internal/settlement/repository"
	"github.com/shivbooks/books/internal/settlement/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settlement.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
