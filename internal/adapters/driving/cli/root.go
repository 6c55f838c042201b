// Package cli provides the cobra-based command line interface for Membank.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/membank/internal/adapters/driven/config/file"
	"github.com/custodia-labs/membank/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/membank/internal/core/ports/driving"
	"github.com/custodia-labs/membank/internal/core/services"
	"github.com/custodia-labs/membank/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
	dataDir     string
)

// Services are wired lazily by initServices so tests can inject mocks.
var (
	queryService   driving.QueryService
	extractService driving.ExtractService
	tableService   driving.TableService

	storeCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "membank",
	Short: "Query and extract content from a local memory bank",
	Long: `Membank is a retrieval layer over a local SQLite content store.

Queries are classified by intent so long content fields are truncated to a
sensible length for the question being asked, with follow-up suggestions for
anything cut. Extraction returns complete records, found by key or title
across the configured content tables in priority order.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.membank)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.membank/data)")
}

// initServices wires the storage-backed services from configuration.
// It is a no-op when services are already set (by a previous call or a test).
func initServices() error {
	if queryService != nil && extractService != nil && tableService != nil {
		return nil
	}

	cfg, err := file.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	registry, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("building table registry: %w", err)
	}

	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	store, err := sqlite.NewStore(dir, registry)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	storeCloser = store

	coordinator := services.NewSearchCoordinator(registry, store)
	queryService = services.NewQueryRunner(store, services.NewSuggestionBuilder(registry))
	extractService = services.NewExtractor(coordinator)
	tableService = services.NewTableLister(registry, store)
	return nil
}

// Execute runs the root command and releases the store afterwards.
func Execute() error {
	defer func() {
		if storeCloser != nil {
			storeCloser.Close() //nolint:errcheck
		}
	}()
	return rootCmd.Execute()
}
