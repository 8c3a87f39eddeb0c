package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query [filter-query]",
	Short: "Filter the catalog with a URL filter query",
	Long: `Filter the catalog with the same query a shared link carries.

Examples:
  flixhub query 'countries=US,GB&categories=Horror&search=ghost'
  flixhub query 'special=ghibli' --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().Bool("json", false, "print the full result as JSON")
	queryCmd.Flags().Int("limit", 0, "print at most this many records (0 = all)")
}

func runQuery(c *cobra.Command, args []string) error {
	e, err := openEnv(c.Context(), true)
	if err != nil {
		return err
	}
	defer e.Close()

	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	d := e.svc.Decode(query)
	res := e.svc.Search(d.State)

	if limit, _ := c.Flags().GetInt("limit"); limit > 0 && limit < len(res.Items) {
		res.Items = res.Items[:limit]
	}

	out := c.OutOrStdout()
	if asJSON, _ := c.Flags().GetBool("json"); asJSON {
		return printJSON(out, res)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tYEAR\tRATING\tCATEGORY")
	for _, w := range res.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", w.ID, w.Title, w.Year, w.Rating, w.Category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d records  ?%s\n", res.Total, res.Query)
	return nil
}
