package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/districtclose/districtclose/internal/config"
	"github.com/districtclose/districtclose/internal/migration"
	"github.com/districtclose/districtclose/internal/observability"
	"github.com/districtclose/districtclose/internal/server"
	"github.com/districtclose/districtclose/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
