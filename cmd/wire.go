//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/yumine/versia"
	"github.com/yumine/versia/sqlite"
)

func createServer(log *zerolog.Logger) (*versia.Server, error) {
	wire.Build(
		versia.NewHandler,
		versia.NewServer,
		versia.NewURLResolver,
		versia.ParseConfig,
		versia.NewProcessor,
		versia.NewResolver,
		versia.NewRemoteServer,
		sqlite.NewSession,
		sqlite.NewSQLite,
		sqlite.NewAccountDB,
		sqlite.NewRemoteObjectDB,
		sqlite.NewStatusDB,
		sqlite.NewFavouriteDB,
		sqlite.NewRelationshipDB,
		sqlite.NewNotificationDB,
	)
	return nil, nil
}
