package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/membank/internal/core/ports/driving"
)

var (
	queryMaxContentLength int
	queryJSON             bool
)

var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run a read query with smart truncation",
	Long: `Runs a SQL query against the content tables.

The query is classified by intent to pick a truncation limit for long string
fields: content-focused queries get generous room, counts and broad listings
stay short. Pass --max-content-length to override the limit, or set it to 0
to disable truncation entirely.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryMaxContentLength, "max-content-length", "m", 0,
		"override the truncation limit (0 disables truncation)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	var override *int
	if cmd.Flags().Changed("max-content-length") {
		override = &queryMaxContentLength
	}

	report, err := queryService.RunQuery(cmd.Context(), args[0], override)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		return outputQueryJSON(cmd, report)
	}
	return outputQueryText(cmd, report)
}

func outputQueryJSON(cmd *cobra.Command, report *driving.QueryReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryText(cmd *cobra.Command, report *driving.QueryReport) error {
	cmd.Printf("Strategy: %s (limit %d)\n", report.Strategy, report.Limit)

	if len(report.Rows) == 0 {
		cmd.Println("No rows returned.")
		return nil
	}

	cmd.Println()
	for i, row := range report.Rows {
		cmd.Printf("  [%d]\n", i+1)

		// Stable column order for readable output.
		cols := make([]string, 0, len(row))
		for col := range row {
			cols = append(cols, col)
		}
		sort.Strings(cols)

		for _, col := range cols {
			cmd.Printf("      %s: %v\n", col, row[col])
		}
		for _, tr := range report.Truncations[i] {
			cmd.Printf("      (%s truncated from %d chars)\n", tr.Column, tr.Field.OriginalLength)
		}
		cmd.Println()
	}

	cmd.Printf("%d row(s)\n", len(report.Rows))

	if len(report.Suggestions) > 0 {
		cmd.Println()
		cmd.Println("Suggestions:")
		for _, s := range report.Suggestions {
			cmd.Printf("  - %s\n", s.Instruction)
		}
	}
	return nil
}
