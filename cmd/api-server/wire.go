//go:build wireinject
// +build wireinject

package main

import (
	"Chirp/config"
	"Chirp/dao"
	"Chirp/handler"
	"Chirp/pkg/database"
	"Chirp/pkg/server"
	"Chirp/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		server.NewGinEngine,
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Tweet), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}

func InitSeeder(cfg *config.Config) *dao.Seeder {
	wire.Build(
		database.NewDB,
		dao.NewSeeder,
	)
	return nil
}
