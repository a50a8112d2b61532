package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curioapp/curio/internal/search"
	"github.com/curioapp/curio/internal/view"
)

var lsCmd = &cobra.Command{
	Use:   "ls [view]",
	Short: "List the contents of a view",
	Long: `List the contents of a view. The view may be a folder id, a smart
folder id (smart:...), or one of the system views: all, favorites,
purchases, trash. No argument lists the all view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := ""
		if len(args) == 1 {
			raw = args[0]
		}

		sess, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		sess.SelectView(view.ParseID(raw))

		if trail := sess.Breadcrumbs(); len(trail.Crumbs) > 0 {
			labels := make([]string, len(trail.Crumbs))
			for i, c := range trail.Crumbs {
				labels[i] = c.Label
			}
			if trail.Truncated {
				labels = append(labels[:1], append([]string{"..."}, labels[1:]...)...)
			}
			fmt.Println(strings.Join(labels, " / "))
		}

		for _, sub := range sess.Subfolders() {
			fmt.Printf("  %s/  (%d)  %s\n", sub.Name, sub.Count, sub.ID)
		}

		items := sess.Items()
		for _, a := range items {
			fmt.Printf("  %-24s %-8s %s\n", a.Title, a.Ratio, a.ID)
		}

		switch sess.EmptyState() {
		case search.EmptyTrash:
			fmt.Println("trash is empty")
		case search.EmptyPurchases:
			fmt.Println("no purchases yet")
		case search.EmptyNoResults:
			fmt.Println("no results")
		default:
			fmt.Printf("%d items\n", len(items))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
