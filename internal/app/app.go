package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tallybook/tally/internal/config"
	"github.com/tallybook/tally/internal/service"
	"github.com/tallybook/tally/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp opens the ledger database (creating and migrating it if needed) and
// wires the service layer on top of it. The returned cleanup closes the store.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPath := cfg.Database.Path

	if dbPath == "" {
		appDir, _ := getAppDataDir()
		dbPath = filepath.Join(appDir, "tally.db")
	}

	dbPath, err := expandPath(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc := service.NewService(dbStore, cfg)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
