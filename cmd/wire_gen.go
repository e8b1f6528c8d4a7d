// Code generated by Wire. DO NOT EDIT.

//go:generate go run github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"github.com/rs/zerolog"
	"github.com/yumine/versia"
	"github.com/yumine/versia/sqlite"
)

// Injectors from wire.go:

func createServer(log *zerolog.Logger) (*versia.Server, error) {
	config, err := versia.ParseConfig()
	if err != nil {
		return nil, err
	}
	urlResolver := versia.NewURLResolver(config)
	session, err := sqlite.NewSession()
	if err != nil {
		return nil, err
	}
	remoteServer := versia.NewRemoteServer(config, urlResolver)
	sqLite, err := sqlite.NewSQLite()
	if err != nil {
		return nil, err
	}
	remoteObjectStore := sqlite.NewRemoteObjectDB(sqLite)
	statusStore := sqlite.NewStatusDB(sqLite)
	resolver := versia.NewResolver(log, remoteServer, remoteObjectStore, statusStore)
	accountStore := sqlite.NewAccountDB(sqLite)
	favouriteStore := sqlite.NewFavouriteDB(sqLite)
	relationshipStore := sqlite.NewRelationshipDB(sqLite)
	notificationStore := sqlite.NewNotificationDB(sqLite)
	processor := versia.NewProcessor(config, log, urlResolver, remoteServer, resolver, accountStore, remoteObjectStore, statusStore, favouriteStore, relationshipStore, notificationStore)
	handler := versia.NewHandler(log, urlResolver, session, processor)
	server, err := versia.NewServer(config, handler)
	if err != nil {
		return nil, err
	}
	return server, nil
}
