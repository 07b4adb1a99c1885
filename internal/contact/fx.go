package contact

import (
	"github.com/shivbooks/books/internal/contact/repository"
	"github.com/shivbooks/books/internal/contact/service"
	"go.uber.org/fx"
)

var Module = fx.Module("contact.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
