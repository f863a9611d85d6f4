// Package server parses server command flags and runs the HTTP API.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/duongpm13/cat-battle/internal/api/rest"
	"github.com/duongpm13/cat-battle/internal/game/app"
	"github.com/duongpm13/cat-battle/internal/game/lucky"
	"github.com/duongpm13/cat-battle/internal/session"
	"github.com/duongpm13/cat-battle/internal/storage/sqlite"
)

const shutdownTimeout = 10 * time.Second

// Config holds server command configuration.
type Config struct {
	Port          int           `env:"CAT_BATTLE_PORT"           envDefault:"4000"`
	Addr          string        `env:"CAT_BATTLE_ADDR"`
	DBPath        string        `env:"CAT_BATTLE_DB_PATH"        envDefault:"cat-battle.db"`
	SessionSecret string        `env:"CAT_BATTLE_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"CAT_BATTLE_SESSION_TTL"    envDefault:"168h"`
	PlayCooldown  time.Duration `env:"CAT_BATTLE_PLAY_COOLDOWN"  envDefault:"0s"`
}

// ParseConfig loads environment defaults and then parses flags over them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database file")
	fs.DurationVar(&cfg.PlayCooldown, "play-cooldown", cfg.PlayCooldown, "Cooldown stamped after each resolved play (0 disables)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ListenAddr resolves the listen address from Addr or Port.
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run composes the store, session manager, and router, then serves until
// ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return fmt.Errorf("CAT_BATTLE_SESSION_SECRET is required")
	}

	log := slog.Default()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("close store", "err", err)
		}
	}()

	sessions, err := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, nil)
	if err != nil {
		return fmt.Errorf("session manager: %w", err)
	}

	engine := lucky.Engine{Cooldown: cfg.PlayCooldown}
	handler := rest.NewHandler(store, app.NewGameService(store, engine), sessions, log)

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      rest.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr, "db", cfg.DBPath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
