package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/curioapp/curio/internal/app"
	"github.com/curioapp/curio/internal/catalog"
	"github.com/curioapp/curio/internal/config"
	"github.com/curioapp/curio/internal/debug"
	"github.com/curioapp/curio/internal/store"
)

var (
	flagConfig  string
	flagLibrary string
	flagDB      string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "curio",
	Short: "Organize an asset library with folders, smart folders and search",
	Long: `curio maintains a virtual folder layer over a library of assets.
Assets keep their place on disk; folders, favorites, trash and smart
folders are organization state persisted in a local settings database.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			debug.EnableAll()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.config/curio/config.json)")
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "", "library root to scan (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "settings database path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable verbose debug logging")
}

// openSession wires a full session from config, settings database and a
// library scan. The caller owns the returned cleanup.
func openSession() (*app.Session, func(), error) {
	mgr := config.NewManager()
	if err := mgr.Load(flagConfig); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	root := cfg.Library.Root
	if flagLibrary != "" {
		root = flagLibrary
	}
	dbPath := mgr.DBPath()
	if flagDB != "" {
		dbPath = flagDB
	}

	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open settings database: %w", err)
	}

	assets, err := catalog.Scan(root)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("scan library %s: %w", root, err)
	}

	sess := app.NewSession(app.Options{
		Store:    st,
		Catalog:  assets,
		Debounce: mgr.Debounce(),
	})
	cleanup := func() {
		sess.Close()
		st.Close()
	}
	return sess, cleanup, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
