// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the composition root of the college-organizer gateway.
//
// [New] builds the gateway handler from configuration together with its
// optional database connection and, unless the process runs in a serverless
// host, the HTTP server that will serve it. The same [App] backs both the
// long-running binary in cmd/server and the exported serverless function.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/college-organizer/internal/config"
	"github.com/MKhiriev/college-organizer/internal/handler"
	httphandler "github.com/MKhiriev/college-organizer/internal/handler/http"
	"github.com/MKhiriev/college-organizer/internal/logger"
	"github.com/MKhiriev/college-organizer/internal/server"
	"github.com/MKhiriev/college-organizer/internal/store"
	"github.com/MKhiriev/college-organizer/models"
)

type App struct {
	handler    http.Handler
	server     server.Server
	db         *store.DB
	serverless bool

	logger *logger.Logger
}

func New(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	logger.Info().Str("build", buildInfo.String()).Msg("creating app...")

	a := &App{
		serverless: cfg.Server.IsServerless(),
		logger:     logger,
	}

	var pinger httphandler.Pinger
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnectPostgres(cfg.Storage.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating database connection: %w", err)
		}
		a.db = db
		pinger = db
	} else {
		logger.Info().Msg(MsgDatabaseDisabled)
	}

	handlers, err := handler.NewHandlers(cfg, pinger, buildInfo, logger)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("error creating handlers: %w", err), a.Close())
	}
	a.handler = handlers.HTTP.Init()

	if !a.serverless {
		a.server, err = server.NewServer(a.handler, cfg.Server, logger)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("error creating server: %w", err), a.Close())
		}
	}

	return a, nil
}

// Handler returns the full gateway pipeline.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run serves until SIGINT, SIGTERM or SIGQUIT arrives. In a serverless host
// it returns immediately without binding a port.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if a.serverless {
		a.logger.Info().Msg(MsgServerlessDetected)
		return nil
	}

	go func() {
		<-ctx.Done()
		a.logger.Info().Msg(MsgStopSignal)
	}()

	return a.server.Run(ctx)
}

// Close releases the database connection pool, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	return nil
}
