// Package seed creates demo account records for local development.
package seed

import (
	"context"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/duongpm13/cat-battle/internal/platform/id"
	"github.com/duongpm13/cat-battle/internal/storage"
	"github.com/duongpm13/cat-battle/internal/storage/sqlite"
)

// Config holds seed command configuration.
type Config struct {
	DBPath      string `env:"CAT_BATTLE_DB_PATH" envDefault:"cat-battle.db"`
	TelegramID  string `env:"CAT_BATTLE_SEED_TELEGRAM_ID" envDefault:"testuser"`
	DisplayName string `env:"CAT_BATTLE_SEED_DISPLAY_NAME"`
}

// ParseConfig loads environment defaults and then parses flags over them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database file")
	fs.StringVar(&cfg.TelegramID, "telegram-id", cfg.TelegramID, "Telegram id for the demo account")
	fs.StringVar(&cfg.DisplayName, "display-name", cfg.DisplayName, "Display name for the demo account")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run creates the demo account and its statistics row, reusing the account
// if the telegram id is already registered.
func Run(ctx context.Context, cfg Config) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	accountID, err := ensureAccount(ctx, store, cfg)
	if err != nil {
		return err
	}

	if _, err := store.StatisticByAccountID(ctx, accountID); err == nil {
		fmt.Printf("account %s already seeded for telegram id %q\n", accountID, cfg.TelegramID)
		return nil
	}

	if err := store.PutStatistic(ctx, storage.Statistic{AccountID: accountID}); err != nil {
		return fmt.Errorf("put statistic: %w", err)
	}

	fmt.Printf("seeded account %s for telegram id %q\n", accountID, cfg.TelegramID)
	return nil
}

func ensureAccount(ctx context.Context, store *sqlite.Store, cfg Config) (string, error) {
	if account, err := store.AccountByTelegramID(ctx, cfg.TelegramID); err == nil {
		return account.AccountID, nil
	}

	accountID, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate account id: %w", err)
	}
	if err := store.PutAccount(ctx, storage.Account{
		AccountID:   accountID,
		TelegramID:  cfg.TelegramID,
		DisplayName: cfg.DisplayName,
	}); err != nil {
		return "", fmt.Errorf("put account: %w", err)
	}
	return accountID, nil
}
