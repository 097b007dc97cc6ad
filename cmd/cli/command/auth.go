package command

import (
	"fmt"
	"time"

	"novelhub/cmd/cli/authentication"
	"novelhub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Register, log in and log out of the novelhub API server.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.RegisterRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")
		req.Email, _ = cmd.Flags().GetString("email")

		resp, err := client.NewHTTPClient(apiURL).Register(cmd.Context(), &req)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("✓ %s", resp.Message)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and keep the token in the OS keyring",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Password, _ = cmd.Flags().GetString("password")
		admin, _ := cmd.Flags().GetBool("admin")

		resp, err := client.NewHTTPClient(apiURL).Login(cmd.Context(), &req, admin)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = authentication.StoreTokens(&authentication.StoredCredentials{
			AccessToken: resp.AccessToken,
			Username:    resp.Username,
			UserID:      resp.UserID,
			Admin:       admin,
			ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
		})
		if err != nil {
			return fmt.Errorf("could not store token: %w", err)
		}

		color.Green("✓ %s (%s)", resp.Message, resp.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := authentication.DeleteTokens(); err != nil {
			return err
		}
		color.Green("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in account and its monthly tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, creds, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if creds.Admin {
			fmt.Printf("%s (administrator)\n", creds.Username)
			return nil
		}

		info, err := c.UserInfo(cmd.Context(), creds.Username)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", info.Username, info.Email)
		fmt.Printf("User ID:         %d\n", info.ID)
		fmt.Printf("Monthly tickets: %d\n", info.MonthlyTickets)
		return nil
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)

	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("password")
	registerCmd.MarkFlagRequired("email")

	loginCmd.Flags().StringP("username", "u", "", "Username for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.Flags().Bool("admin", false, "Log in as administrator")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")
}
