package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"flixhub/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the admin routes",
	Long: `Sign an HS256 token with auth.jwt_secret. Send it as
"Authorization: Bearer <token>" to POST /admin/reload.

Example:
  FLIXHUB_AUTH_JWT_SECRET=s3cret flixhub token --subject deploy-bot`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("subject", "operator", "token subject")
	tokenCmd.Flags().String("scope", auth.ScopeAdmin, "token scope")
}

func runToken(c *cobra.Command, _ []string) error {
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is not set")
	}
	subject, _ := c.Flags().GetString("subject")
	scope, _ := c.Flags().GetString("scope")

	tok, exp, err := auth.NewTokenService(cfg.Auth).Sign(subject, scope)
	if err != nil {
		return err
	}
	return printJSON(c.OutOrStdout(), map[string]string{
		"token":      tok,
		"expires_at": exp.UTC().Format(time.RFC3339),
	})
}
