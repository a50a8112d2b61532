package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curioapp/curio/internal/catalog"
	"github.com/curioapp/curio/internal/config"
	"github.com/curioapp/curio/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import assets from a directory into the library",
	Long: `Scan a directory and record its assets as imported. Imported assets
are merged ahead of the library scan on every session start, so a
re-import of the same source wins over the older record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := config.NewManager()
		if err := mgr.Load(flagConfig); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath := mgr.DBPath()
		if flagDB != "" {
			dbPath = flagDB
		}

		assets, err := catalog.Scan(args[0])
		if err != nil {
			return fmt.Errorf("scan %s: %w", args[0], err)
		}
		if len(assets) == 0 {
			fmt.Println("nothing to import")
			return nil
		}

		st, err := store.OpenSQLite(dbPath)
		if err != nil {
			return fmt.Errorf("open settings database: %w", err)
		}
		defer st.Close()

		slices := store.Slices{S: st}
		merged := catalog.Merge(assets, slices.LoadImportedAssets())
		if err := slices.SaveImportedAssets(merged); err != nil {
			return fmt.Errorf("save imported assets: %w", err)
		}

		fmt.Printf("imported %d assets (%d total)\n", len(assets), len(merged))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
