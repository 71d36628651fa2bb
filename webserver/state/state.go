package state

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/infinitybotlist/eureka/snippets"
	"github.com/kulthx/botconfig/config"
	"github.com/kulthx/botconfig/configstore"
	"github.com/kulthx/botconfig/notify"
	"go.uber.org/zap"
)

// State is everything a request handler needs. It is built once at startup
// and handed to the routers.
type State struct {
	Config   *config.Config
	Logger   *zap.Logger
	Context  context.Context
	Store    configstore.Store
	Notifier notify.TokenNotifier

	// Now is the clock used for last_updated
	Now func() time.Time
}

// Setup loads config.yaml from configPath and opens the file store.
func Setup(configPath string) (*State, error) {
	cfg, err := config.Load(configPath, validator.New())

	if err != nil {
		return nil, err
	}

	logger := snippets.CreateZap()

	installDir, err := config.InstallDir()

	if err != nil {
		return nil, err
	}

	storePath := cfg.ResolveStorePath(installDir)

	logger.Info("Using bot config file", zap.String("path", storePath))

	return &State{
		Config:   cfg,
		Logger:   logger,
		Context:  context.Background(),
		Store:    configstore.NewFileStore(storePath, logger),
		Notifier: notify.Nop{Logger: logger},
		Now:      time.Now,
	}, nil
}
