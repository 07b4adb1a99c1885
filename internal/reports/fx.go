package reports

import (
	"github.com/shivbooks/books/internal/reports/repository"
	"github.com/shivbooks/books/internal/reports/service"
	"go.uber.org/fx"
)

var Module = fx.Module("reports.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
