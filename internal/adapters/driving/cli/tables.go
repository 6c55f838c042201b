package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var tablesJSON bool

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the content tables in search priority order",
	RunE:  runTables,
}

func init() {
	tablesCmd.Flags().BoolVar(&tablesJSON, "json", false, "output the listing as JSON")
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	infos, err := tableService.ListTables(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing tables: %w", err)
	}

	if tablesJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal tables: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, info := range infos {
		cmd.Printf("  %d. %s %s (%d records)\n", info.Rank, info.Tag, info.Name, info.Records)
	}
	return nil
}
