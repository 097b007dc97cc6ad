package command

import (
	"fmt"
	"strconv"

	"novelhub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var novelCmd = &cobra.Command{
	Use:     "novel",
	Aliases: []string{"novels"},
	Short:   "Browse and read novels",
}

var novelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every novel",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := client.NewHTTPClient(apiURL).ListNovels(cmd.Context())
		if err != nil {
			return err
		}
		printNovels("📚 Novels", list)
		return nil
	},
}

var novelShowCmd = &cobra.Command{
	Use:   "show [novel_id]",
	Short: "Show one novel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		n, err := client.NewHTTPClient(apiURL).GetNovel(cmd.Context(), id)
		if err != nil {
			return err
		}

		printHeader("%s", n.Title)
		fmt.Printf("Author:          %s\n", deref(n.Author))
		fmt.Printf("Monthly tickets: %d\n", n.MonthlyTickets)
		if n.Description != nil {
			fmt.Printf("\n%s\n", *n.Description)
		}
		return nil
	},
}

var novelSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search novels by title and author",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")

		list, err := client.NewHTTPClient(apiURL).SearchNovels(cmd.Context(), title, author)
		if err != nil {
			return err
		}
		printNovels("🔍 Search results", list)
		return nil
	},
}

var novelRankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Novels ordered by monthly tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := client.NewHTTPClient(apiURL).Rankings(cmd.Context())
		if err != nil {
			return err
		}
		printHeader("🏆 Monthly ticket rankings")
		for i, n := range list {
			fmt.Printf("%2d. %-30s %6d tickets (ID: %d)\n", i+1, n.Title, n.MonthlyTickets, n.ID)
		}
		return nil
	},
}

var novelFeaturedCmd = &cobra.Command{
	Use:   "featured",
	Short: "Featured novels",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := client.NewHTTPClient(apiURL).Featured(cmd.Context())
		if err != nil {
			return err
		}
		printNovels("⭐ Featured", list)
		return nil
	},
}

var novelChaptersCmd = &cobra.Command{
	Use:   "chapters [novel_id]",
	Short: "Table of contents of a novel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		list, err := client.NewHTTPClient(apiURL).ListChapters(cmd.Context(), id)
		if err != nil {
			return err
		}
		printHeader("Chapters")
		for i, ch := range list {
			fmt.Printf("%3d. %s (ID: %d)\n", i+1, ch.Title, ch.ID)
		}
		return nil
	},
}

var novelReadCmd = &cobra.Command{
	Use:   "read [chapter_id]",
	Short: "Print a chapter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		ch, err := client.NewHTTPClient(apiURL).GetChapter(cmd.Context(), id)
		if err != nil {
			return err
		}
		printHeader("%s", ch.Title)
		fmt.Println(ch.Content)
		return nil
	},
}

func init() {
	novelCmd.AddCommand(novelListCmd)
	novelCmd.AddCommand(novelShowCmd)
	novelCmd.AddCommand(novelSearchCmd)
	novelCmd.AddCommand(novelRankingsCmd)
	novelCmd.AddCommand(novelFeaturedCmd)
	novelCmd.AddCommand(novelChaptersCmd)
	novelCmd.AddCommand(novelReadCmd)

	novelSearchCmd.Flags().StringP("title", "t", "", "Part of the title")
	novelSearchCmd.Flags().StringP("author", "a", "", "Part of the author name")
}

func printNovels(header string, list []client.Novel) {
	if len(list) == 0 {
		color.Yellow("No novels")
		return
	}
	printHeader("%s (%d)", header, len(list))
	for i, n := range list {
		fmt.Printf("%d. %s (ID: %d)\n", i+1, n.Title, n.ID)
		if n.Author != nil {
			fmt.Printf("   Author: %s\n", *n.Author)
		}
	}
}

func parseIDArg(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
