// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/doeshing/smsh/internal/domain"
	"github.com/doeshing/smsh/internal/infrastructure/ai"
	"github.com/doeshing/smsh/internal/infrastructure/config"
	"github.com/doeshing/smsh/internal/infrastructure/credentials"
	"github.com/doeshing/smsh/internal/infrastructure/logfile"
	"github.com/doeshing/smsh/internal/pkg/logger"
	"github.com/doeshing/smsh/internal/services"
)

// Container holds the constructed dependency graph for one invocation.
// The CLI layer fills in Assist.Runner after construction since it owns the
// terminal.
type Container struct {
	Assist *services.Service
	Doctor *services.DoctorService
	Config domain.Config
}

// BuildContainer resolves configuration once and constructs the services.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	// a local .env participates in resolution, best-effort
	_ = godotenv.Load()

	cfg, err := config.NewFileLoader("").Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	resolver := credentials.NewResolver()

	assist := &services.Service{
		Config:  cfg,
		Factory: ai.NewFactory(resolver),
		CallLog: logfile.NewAppender(cfg.LogPath, log),
		Logger:  log,
	}

	doctor := &services.DoctorService{
		Config:   cfg,
		Resolver: resolver,
	}

	return &Container{
		Assist: assist,
		Doctor: doctor,
		Config: cfg,
	}, nil
}
