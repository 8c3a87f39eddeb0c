package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"flixhub/internal/workid"
	"flixhub/internal/works"
)

var selectCmd = &cobra.Command{
	Use:   "select <source-id>",
	Short: "Assign a record's work id and print its links",
	Long: `Assign (or reuse) the work id of the record with the given source id and
print its permalink and deep link. The deep link keeps the filters given
with --query.

Example:
  flixhub select 81234 --query 'special=ghibli'`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <work-id>",
	Short: "Find the record behind a work id",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(resolveCmd)

	selectCmd.Flags().String("query", "", "filter query the deep link should keep")
}

func runSelect(c *cobra.Command, args []string) error {
	e, err := openEnv(c.Context(), true)
	if err != nil {
		return err
	}
	defer e.Close()

	query, _ := c.Flags().GetString("query")
	sel, err := e.svc.Select(args[0], e.svc.Decode(query).State)
	if errors.Is(err, works.ErrRecordNotFound) {
		return fmt.Errorf("no record with source id %q", args[0])
	}
	if err != nil {
		return err
	}
	return printJSON(c.OutOrStdout(), sel)
}

func runResolve(c *cobra.Command, args []string) error {
	e, err := openEnv(c.Context(), true)
	if err != nil {
		return err
	}
	defer e.Close()

	res, err := e.svc.Resolve(args[0])
	if errors.Is(err, workid.ErrWorkNotFound) {
		return fmt.Errorf("work %q: %w", args[0], err)
	}
	if err != nil {
		return err
	}
	return printJSON(c.OutOrStdout(), res)
}
