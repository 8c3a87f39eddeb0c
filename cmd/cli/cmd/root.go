// Package cmd implements the flixhub CLI commands.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"flixhub/internal/catalog"
	"flixhub/internal/identity"
	"flixhub/internal/works"
	"flixhub/pkg/utils"
)

var cfg *utils.Config

var rootCmd = &cobra.Command{
	Use:   "flixhub",
	Short: "Browse, filter and link a streaming catalog",
	Long: `flixhub filters a streaming catalog by country, category, year range,
special category and free text, and assigns each record a stable work id
for permalinks.

Configuration comes from flixhub.yaml and FLIXHUB_* environment variables,
e.g. FLIXHUB_IDENTITY_DRIVER=file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(c *cobra.Command, _ []string) error {
		return initConfig(c)
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ./flixhub.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (console, json)")
}

func initConfig(c *cobra.Command) error {
	path, _ := c.Flags().GetString("config")
	loaded, err := utils.LoadConfig(path)
	if err != nil {
		return err
	}

	// flags win over file and env, but only when set
	if c.Flags().Changed("log-level") {
		loaded.Log.Level, _ = c.Flags().GetString("log-level")
	}
	if c.Flags().Changed("log-format") {
		loaded.Log.Format, _ = c.Flags().GetString("log-format")
	}

	utils.InitLogger(utils.LogOptions{
		Level:   loaded.Log.Level,
		Format:  loaded.Log.Format,
		Service: "cli",
		Writer:  os.Stderr,
	})
	cfg = loaded
	return nil
}

// env is the wired pipeline a command works against.
type env struct {
	svc     *works.Service
	history *identity.History
	closer  io.Closer
}

func (e *env) Close() error { return e.closer.Close() }

// openEnv opens the history and, when load is set, loads the catalog.
func openEnv(ctx context.Context, load bool) (*env, error) {
	history, closer, err := identity.Open(ctx, cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("open identity history: %w", err)
	}

	ref, err := catalog.LoadReference(cfg.Catalog.Reference)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	svc := works.NewService(works.Options{
		Reference: ref,
		History:   history,
		Loader:    catalog.NewAggregatorFromConfig(cfg.Catalog),
		Origin:    cfg.Server.Origin,
	})
	if load {
		if _, err := svc.Reload(ctx); err != nil {
			_ = closer.Close()
			return nil, err
		}
	}
	return &env{svc: svc, history: history, closer: closer}, nil
}

// createOutput opens path for writing, creating parent directories. "-"
// means stdout.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
