package command

import (
	"fmt"

	"novelhub/cmd/cli/authentication"
	"novelhub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administration (needs `auth login --admin`)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetTokens()
		if err != nil {
			return err
		}
		if !creds.Admin {
			return fmt.Errorf("logged in as %s, which is not an administrator account", creds.Username)
		}
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		users, err := c.AdminListUsers(cmd.Context())
		if err != nil {
			return err
		}
		printHeader("👥 Users (%d)", len(users))
		for _, u := range users {
			fmt.Printf("%5d  %-20s %s\n", u.ID, u.Username, u.Email)
		}
		return nil
	},
}

var adminDeleteUserCmd = &cobra.Command{
	Use:   "delete-user [user_id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		c, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if err := c.AdminDeleteUser(cmd.Context(), id); err != nil {
			return err
		}
		color.Green("✓ Deleted user %d", id)
		return nil
	},
}

var adminAddNovelCmd = &cobra.Command{
	Use:   "add-novel",
	Short: "Create a novel",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.NovelRequest
		req.Title, _ = cmd.Flags().GetString("title")
		req.IsFeatured, _ = cmd.Flags().GetBool("featured")
		if v, _ := cmd.Flags().GetString("author"); v != "" {
			req.Author = &v
		}
		if v, _ := cmd.Flags().GetString("description"); v != "" {
			req.Description = &v
		}
		if v, _ := cmd.Flags().GetString("summary"); v != "" {
			req.Summary = &v
		}

		c, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		id, err := c.AdminCreateNovel(cmd.Context(), &req)
		if err != nil {
			return err
		}
		color.Green("✓ Created novel %q (ID: %d)", req.Title, id)
		return nil
	},
}

var adminDeleteNovelCmd = &cobra.Command{
	Use:   "delete-novel [novel_id]",
	Short: "Delete a novel and its chapters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		c, _, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}
		if err := c.AdminDeleteNovel(cmd.Context(), id); err != nil {
			return err
		}
		color.Green("✓ Deleted novel %d", id)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminDeleteUserCmd)
	adminCmd.AddCommand(adminAddNovelCmd)
	adminCmd.AddCommand(adminDeleteNovelCmd)

	adminAddNovelCmd.Flags().StringP("title", "t", "", "Title")
	adminAddNovelCmd.Flags().StringP("author", "a", "", "Author")
	adminAddNovelCmd.Flags().StringP("description", "d", "", "Description")
	adminAddNovelCmd.Flags().StringP("summary", "s", "", "One line summary")
	adminAddNovelCmd.Flags().Bool("featured", false, "Show on the home page carousel")
	adminAddNovelCmd.MarkFlagRequired("title")
}
