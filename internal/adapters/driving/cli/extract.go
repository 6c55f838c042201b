package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/membank/internal/core/ports/driving"
)

var (
	extractKey   string
	extractTitle string
	extractTable string
	extractOut   string
	extractJSON  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Retrieve the complete content of one record",
	Long: `Finds a record by key or title fragment and prints its complete,
untruncated content.

Tables are searched in priority order: exact key first, then key prefix,
then exact and fuzzy title matching. Use --table to restrict the search to
a single table, and --out to write the content to a file named after the
record instead of printing it.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractKey, "key", "k", "", "exact or shortened record identifier")
	extractCmd.Flags().StringVarP(&extractTitle, "title", "t", "", "title fragment to match")
	extractCmd.Flags().StringVar(&extractTable, "table", "", "restrict the search to one table")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "directory to write the content into")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extractKey == "" && extractTitle == "" {
		return errors.New("either --key or --title is required")
	}

	if err := initServices(); err != nil {
		return err
	}

	result, err := extractService.Extract(cmd.Context(), driving.ExtractRequest{
		Key:           extractKey,
		TitleFragment: extractTitle,
		Table:         extractTable,
	})
	if err != nil {
		return err
	}

	if extractOut != "" {
		path := filepath.Join(extractOut, result.SafeName)
		if err := os.MkdirAll(extractOut, 0700); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(result.Content), 0600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		cmd.Printf("Wrote %d bytes to %s\n", len(result.Content), path)
		return nil
	}

	if extractJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s %s (%s, %s)\n", result.Tag, result.Title, result.Table, result.MatchKind)
	cmd.Printf("Key: %s\n", result.Key)
	cmd.Println()
	cmd.Println(result.Content)
	return nil
}
