package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bookshelfCmd = &cobra.Command{
	Use:     "bookshelf",
	Aliases: []string{"shelf"},
	Short:   "Manage your bookshelf",
	Long:    `Add, remove, and list novels on your bookshelf`,
}

var bookshelfAddCmd = &cobra.Command{
	Use:   "add [novel_id]",
	Short: "Put a novel on your bookshelf",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		novelID, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		c, creds, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := c.AddToBookshelf(cmd.Context(), creds.UserID, novelID); err != nil {
			return err
		}
		color.Green("✓ Added novel %d to your bookshelf", novelID)
		return nil
	},
}

var bookshelfListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your bookshelf",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, creds, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		list, err := c.ListBookshelf(cmd.Context(), creds.UserID)
		if err != nil {
			return err
		}
		printHeader("📚 Your bookshelf (%d)", len(list))
		for i, n := range list {
			fmt.Printf("%d. %s (ID: %d)\n", i+1, n.Title, n.ID)
		}
		return nil
	},
}

var bookshelfRemoveCmd = &cobra.Command{
	Use:   "remove [novel_id...]",
	Short: "Take novels off your bookshelf",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := parseIDArg(a)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		c, creds, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := c.RemoveFromBookshelf(cmd.Context(), creds.UserID, ids); err != nil {
			return err
		}
		color.Green("✓ Removed %d novel(s) from your bookshelf", len(ids))
		return nil
	},
}

var rewardCmd = &cobra.Command{
	Use:   "reward [novel_id] [tickets]",
	Short: "Spend monthly tickets on a novel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		novelID, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		tickets, err := parseIDArg(args[1])
		if err != nil {
			return fmt.Errorf("tickets must be a positive number")
		}
		c, creds, err := GetAuthenticatedClient()
		if err != nil {
			return err
		}

		res, err := c.Reward(cmd.Context(), creds.UserID, novelID, tickets)
		if err != nil {
			return err
		}
		color.Green("✓ %s", res.Message)
		fmt.Printf("Remaining tickets: %d\n", res.RemainingTickets)
		return nil
	},
}

func init() {
	bookshelfCmd.AddCommand(bookshelfAddCmd)
	bookshelfCmd.AddCommand(bookshelfListCmd)
	bookshelfCmd.AddCommand(bookshelfRemoveCmd)
}
