package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/g-m-twostay/coursetree/Catalog"
	"github.com/g-m-twostay/coursetree/internal/config"
	"github.com/g-m-twostay/coursetree/internal/ctxlog"
	"github.com/g-m-twostay/coursetree/internal/menu"
)

// App encapsulates the program's dependencies and configuration.
type App struct {
	in      io.Reader
	outW    io.Writer
	logger  *slog.Logger
	cfg     config.Config
	catalog *Catalog.Catalog
}

// New is the constructor for the application. User interaction goes through in and
// outW; logs go to logW so they never interleave with the menu.
func New(in io.Reader, outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		in:      in,
		outW:    outW,
		logger:  logger,
		cfg:     *cfg,
		catalog: Catalog.New(),
	}
}

// Catalog returns the application's catalog. This is primarily for testing.
func (a *App) Catalog() *Catalog.Catalog {
	return a.catalog
}

// Run the interactive session until the user exits.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Starting session.", "file", a.cfg.DataFile)
	if err := menu.New(a.in, a.outW, a.catalog, a.cfg.DataFile).Run(ctx); err != nil {
		a.logger.Error("Session ended with an error.", "error", err)
		return err
	}
	a.logger.Info("Session finished.", "courses", a.catalog.Len())
	return nil
}
