package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bnema/meshsos/internal/adapters/clock"
	"github.com/bnema/meshsos/internal/adapters/feedback/terminal"
	filestore "github.com/bnema/meshsos/internal/adapters/identity/file"
	"github.com/bnema/meshsos/internal/adapters/observability"
	feedadapter "github.com/bnema/meshsos/internal/adapters/render/feed"
	tomlrepo "github.com/bnema/meshsos/internal/adapters/repo/toml"
	"github.com/bnema/meshsos/internal/application"
	"github.com/bnema/meshsos/internal/config"
	"github.com/bnema/meshsos/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

type app struct {
	cfg             *config.Config
	logger          *slog.Logger
	sos             *application.SOSService
	alerts          *application.AlertService
	metrics         *observability.PromMetrics
	registry        *prometheus.Registry
	deadlines       *clock.System
	feedRenderer    func([]domain.SOSMessage, feedadapter.RenderOptions) (string, error)
	pairingRenderer func(application.HandshakeSnapshot, feedadapter.RenderOptions) (string, error)
	now             func() time.Time
}

func wireApp() (*app, error) {
	if err := config.LoadDotEnv(envOrDefault("MESHSOS_ENV_FILE", ".env")); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	messages, err := tomlrepo.NewMessageRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire message repository: %w", err)
	}
	prefs, err := tomlrepo.NewPrefsRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire prefs repository: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics := observability.NewPromMetrics(registry)
	deadlines := clock.NewSystem()
	identity := filestore.NewStore(cfg.IdentityDir)

	return &app{
		cfg:             cfg,
		logger:          logger,
		sos:             application.NewSOSService(messages, identity, deadlines, metrics, logger),
		alerts:          application.NewAlertService(prefs, terminal.NewSink(os.Stderr), logger),
		metrics:         metrics,
		registry:        registry,
		deadlines:       deadlines,
		feedRenderer:    feedadapter.Render,
		pairingRenderer: feedadapter.RenderHandshake,
		now:             time.Now,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
