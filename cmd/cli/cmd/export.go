package cmd

import (
	"github.com/spf13/cobra"

	"flixhub/pkg/utils"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every record with its work id as CSV",
	Long: `Assign work ids to the whole catalog, in catalog order, and write
source_id, work_id, title, year and permalink as CSV. The identity history
is filled as a side effect.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "data/work_ids.csv", "output CSV path (- for stdout)")
}

func runExport(c *cobra.Command, _ []string) error {
	e, err := openEnv(c.Context(), true)
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

	if err := e.svc.WriteCSV(c.Context(), out); err != nil {
		return err
	}
	utils.Named("cli").Info().Str("path", path).Int("records", e.svc.Stats().Records).Msg("exported work ids")
	return nil
}
