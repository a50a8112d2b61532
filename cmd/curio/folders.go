package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/curioapp/curio/internal/app"
	"github.com/curioapp/curio/internal/folder"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List the folder tree with item counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		tree := sess.Tree()
		if len(tree.Roots) == 0 {
			fmt.Println("no folders")
			return nil
		}
		printNodes(sess, tree.Roots, 0)
		return nil
	},
}

func printNodes(sess *app.Session, nodes []*folder.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		fmt.Printf("%s%s  (%d)  %s\n", indent, n.Name, sess.Resolution().Count(n.ID), n.ID)
		printNodes(sess, n.Children, depth+1)
	}
}

var foldersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent, _ := cmd.Flags().GetString("parent")

		sess, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		id, err := sess.CreateFolder(parent, args[0])
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var foldersRmCmd = &cobra.Command{
	Use:   "rm <folder-id>",
	Short: "Delete a folder and its subtree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := sess.DeleteFolder(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "deleted", args[0])
		return nil
	},
}

var foldersRenameCmd = &cobra.Command{
	Use:   "rename <folder-id> <name>",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cleanup, err := openSession()
		if err != nil {
			return err
		}
		defer cleanup()

		return sess.RenameFolder(args[0], args[1])
	},
}

func init() {
	foldersAddCmd.Flags().String("parent", "", "parent folder id (empty for top level)")
	foldersCmd.AddCommand(foldersAddCmd, foldersRmCmd, foldersRenameCmd)
	rootCmd.AddCommand(foldersCmd)
}
