package command

// root.go defines the root command and the flags every subcommand shares.

import (
	"fmt"
	"os"

	"novelhub/cmd/cli/authentication"
	"novelhub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "novelhub",
	Short: "novelhub - command line client for the novelhub API",
	Long: `novelhub talks to a running novelhub API server. Readers can:
- Browse, search and read novels
- Keep a bookshelf
- Reward novels with monthly tickets

Administrators can manage users and novels after "novelhub auth login --admin".`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("✗ %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("NOVELHUB_API", "http://localhost:3000"), "API server URL")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(novelCmd)
	rootCmd.AddCommand(bookshelfCmd)
	rootCmd.AddCommand(rewardCmd)
	rootCmd.AddCommand(adminCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetAuthenticatedClient returns a client carrying the stored token together
// with the stored account.
func GetAuthenticatedClient() (*client.HTTPClient, *authentication.StoredCredentials, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, nil, err
	}
	c := client.NewHTTPClient(apiURL)
	c.SetToken(creds.AccessToken)
	return c, creds, nil
}

func printHeader(format string, args ...any) {
	color.Cyan(format, args...)
	fmt.Println("─────────────────────────────────────────────────────────")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
