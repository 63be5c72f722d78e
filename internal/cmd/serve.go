package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oriondesk-dev/oriondesk/internal/config"
	"github.com/oriondesk-dev/oriondesk/internal/server"
	"github.com/oriondesk-dev/oriondesk/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the OrionDesk API server",
	Long: `Start the OrionDesk API server, which exposes:
- GET /api/incidents
- GET /api/account/:id
- GET /api/orders and GET /api/orders/:orderId
- GET /health`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)

	st := store.New(ds, nil)
	srv := server.New(st, cfg.Server.CORSOrigin)

	fmt.Printf("OrionDesk listening on %s\n", cfg.Server.Addr)
	if err := srv.Run(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// loadDataset resolves the seed source: a configured JSON file, or nil
// to let the store fall back to the built-in fixtures.
func loadDataset(cfg *config.Config) (*store.Dataset, error) {
	if cfg.Seed.File == "" {
		return nil, nil
	}
	ds, err := store.LoadDataset(cfg.Seed.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}
	fmt.Printf("Loaded seed data from %s (%d accounts, %d orders, %d incidents)\n",
		cfg.Seed.File, len(ds.Accounts), len(ds.Orders), len(ds.Incidents))
	return ds, nil
}
