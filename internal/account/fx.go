package account

import (
	"github.com/shivbooks/books/internal/account/repository"
	"github.com/shivbooks/books/internal/account/service"
	"go.uber.org/fx"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
