// Command initdb connects to the configured database and syncs the wallet
// schema. Intended for first-time setup and local development.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/davipay/wallet/infra"
	"github.com/davipay/wallet/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		color.Red("could not load config: %v", err)
		os.Exit(1)
	}

	color.Cyan("Connecting to the database...")
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("connection failed: %v", err)
		os.Exit(1)
	}

	color.Cyan("Syncing models...")
	if err := infra.AutoMigrate(db); err != nil {
		color.Red("schema sync failed: %v", err)
		os.Exit(1)
	}

	color.Green("Tables synced.")
}
