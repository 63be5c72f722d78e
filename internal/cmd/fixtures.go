package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/oriondesk-dev/oriondesk/internal/config"
	"github.com/oriondesk-dev/oriondesk/internal/store"
	"github.com/spf13/cobra"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Print the effective seed dataset as JSON",
	Long: `Print the dataset the daemon would serve, after the one-time
delivery-date backfill, as indented JSON. Useful for inspecting fixtures
or bootstrapping a custom seed file.`,
	RunE: runFixtures,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
}

func runFixtures(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	st := store.New(ds, nil)
	out, err := json.MarshalIndent(st.Dataset(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
