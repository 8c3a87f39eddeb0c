package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flixhub/pkg/utils"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Back up and restore the work id history",
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the history as a JSON object {fingerprint: workId}",
	Args:  cobra.NoArgs,
	RunE:  runHistoryExport,
}

var historyImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a JSON history file into the configured store",
	Long: `Merge a JSON object {fingerprint: workId} into the configured history.
Entries in the file replace stored entries with the same fingerprint.

Example:
  flixhub history import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryImport,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyImportCmd)

	historyExportCmd.Flags().StringP("out", "o", "-", "output path (- for stdout)")
}

func runHistoryExport(c *cobra.Command, _ []string) error {
	e, err := openEnv(c.Context(), false)
	if err != nil {
		return err
	}
	defer e.Close()

	path, _ := c.Flags().GetString("out")
	out, err := createOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return printJSON(out, e.history.Snapshot())
}

func runHistoryImport(c *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var entries map[string]string
	if err := json.Unmarshal(b, &entries); err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	e, err := openEnv(c.Context(), false)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.history.Merge(c.Context(), entries); err != nil {
		return fmt.Errorf("merge history: %w", err)
	}
	utils.Named("cli").Info().Int("entries", len(entries)).Str("driver", cfg.Identity.Driver).Msg("history imported")
	return nil
}
