package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ferdiebergado/fundlist/internal/config"
	"github.com/ferdiebergado/fundlist/internal/fund"
	"github.com/ferdiebergado/fundlist/internal/platform/db"
	"github.com/ferdiebergado/fundlist/internal/platform/router"
	"github.com/ferdiebergado/fundlist/internal/platform/validation"
	"github.com/go-playground/form/v4"
)

type Provider struct {
	DB           *sql.DB
	Funds        fund.Repository
	Validator    validation.Validator
	Router       router.Router
	QueryDecoder *form.Decoder
}

// NewValidator returns the validator with the cross-field rules of the fund list parameters.
func NewValidator() *validation.GoPlaygroundValidator {
	v := validation.NewGoPlaygroundValidator()
	v.RegisterStructRule(fund.ValidateRanges, fund.ListParams{})
	return v
}

func newProvider(ctx context.Context, cfg *config.Config) (*Provider, error) {
	provider := &Provider{
		Validator:    NewValidator(),
		Router:       router.NewGoexpressRouter(),
		QueryDecoder: form.NewDecoder(),
	}

	switch cfg.Store.Kind {
	case config.StorePostgres:
		conn, err := db.NewPostgresDB(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		provider.DB = conn
		provider.Funds = fund.NewRepository(conn)
	default:
		repo, err := newMemoryRepository(cfg.Store.SeedFile)
		if err != nil {
			return nil, err
		}
		provider.Funds = repo
	}

	return provider, nil
}

func newMemoryRepository(seedFile string) (*fund.MemoryRepository, error) {
	if seedFile == "" {
		slog.Warn("No seed file configured, the memory store is empty.")
		return fund.NewMemoryRepository(), nil
	}

	f, err := os.Open(filepath.Clean(seedFile))
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	funds, err := fund.DecodeFunds(f)
	if err != nil {
		return nil, fmt.Errorf("seed memory store from %s: %w", seedFile, err)
	}

	slog.Info("Memory store seeded.", "file", seedFile, "funds", len(funds))
	return fund.NewMemoryRepository(funds...), nil
}

func (p *Provider) Close() {
	if p.DB == nil {
		return
	}
	if err := p.DB.Close(); err != nil {
		slog.Error("failed to close database", "reason", err)
	}
}
