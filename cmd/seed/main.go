// Command seed creates the funds table and loads funds from a JSON file into Postgres.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ferdiebergado/fundlist/internal/config"
	"github.com/ferdiebergado/fundlist/internal/fund"
	"github.com/ferdiebergado/fundlist/internal/pkg/logging"
	"github.com/ferdiebergado/fundlist/internal/platform/db"
	"github.com/ferdiebergado/gopherkit/env"
)

func main() {
	cfgFile := flag.String("config", "config.json", "path to the config file")
	envFile := flag.String("env", ".env", "path to the env file")
	dataFile := flag.String("file", "testdata/funds.json", "path to the JSON array of funds")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *cfgFile, *envFile, *dataFile); err != nil {
		slog.Error("Seeding failed.", "reason", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgFile, envFile, dataFile string) error {
	if _, err := os.Stat(envFile); err == nil {
		if err := env.Load(envFile); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat env file: %w", err)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cfg.DB == nil {
		return errors.New("seed: db config is missing")
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	funds, err := readFunds(dataFile)
	if err != nil {
		return err
	}

	conn, err := db.NewPostgresDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer conn.Close()

	txMgr := db.NewSQLTxManager(conn)
	if err := db.Migrate(ctx, conn, txMgr); err != nil {
		return err
	}

	repo := fund.NewRepository(conn)
	if err := txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		return repo.Save(txCtx, funds)
	}); err != nil {
		return fmt.Errorf("save funds: %w", err)
	}

	slog.Info("Funds seeded.", "file", dataFile, "count", len(funds))
	return nil
}

func readFunds(path string) ([]fund.Fund, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open funds file: %w", err)
	}
	defer f.Close()

	funds, err := fund.DecodeFunds(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return funds, nil
}
