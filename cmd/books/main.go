package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shivbooks/books/internal/clock"
	"github.com/shivbooks/books/internal/config"
	"github.com/shivbooks/books/internal/migration"
	"github.com/shivbooks/books/internal/observability"
	"github.com/shivbooks/books/internal/server"
	"github.com/shivbooks/books/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

func main() {
	// Money fields serialize as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}

// RegisterSnowflake builds the node used for all document IDs.
func RegisterSnowflake() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
