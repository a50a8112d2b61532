package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curioapp/curio/internal/search"
	"github.com/curioapp/curio/internal/view"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the library",
	Long: `Search across titles, source filenames, tags and comments. Facet
flags narrow the result; the query widens it across text fields.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orientation, _ := cmd.Flags().GetString("orientation")
		colors, _ := cmd.Flags().GetStringSlice("color")
		ratios, _ := cmd.Flags().GetStringSlice("ratio")
		favsOnly, _ := cmd.Flags().GetBool("favorites")
		within, _ := cmd.Flags().GetString("in")
		sortBy, _ := cmd.Flags().GetString("sort")

		sess, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		sess.SelectView(view.ParseID(within))
		sess.SetFilters(search.Filters{
			Colors:        colors,
			Ratios:        ratios,
			Orientation:   orientation,
			FavoritesOnly: favsOnly,
		}.Sanitize())
		if sortBy != "" && search.ValidSort(search.Sort(sortBy)) {
			sess.SetSort(search.Sort(sortBy))
		}

		sess.SetQuery(args[0])
		items := sess.Items()
		for _, a := range items {
			fmt.Printf("%-24s %-8s %s\n", a.Title, a.Ratio, a.ID)
		}
		if len(items) == 0 {
			fmt.Println("no results")
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().String("in", "", "view to search within (default: all)")
	searchCmd.Flags().String("orientation", "", "landscape, portrait or square")
	searchCmd.Flags().StringSlice("color", nil, "filter by color hex")
	searchCmd.Flags().StringSlice("ratio", nil, "filter by aspect ratio, e.g. 16/9")
	searchCmd.Flags().Bool("favorites", false, "only favorites")
	searchCmd.Flags().String("sort", "", "name-asc, name-desc, id-asc, id-desc, hue-asc, hue-desc")
	rootCmd.AddCommand(searchCmd)
}
