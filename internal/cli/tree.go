package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partshelf/partshelf/pkg/catalog"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the category tree",
		RunE:  runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	factory, conn, err := openCatalog()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer conn.Disconnect()

	roots, err := factory.RootCategories()
	if err != nil {
		return err
	}
	for _, root := range roots {
		if err := printSubtree(cmd, root, 0); err != nil {
			return err
		}
	}
	return nil
}

func printSubtree(cmd *cobra.Command, n *catalog.Node, depth int) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%s%s (id=%d)\n",
		strings.Repeat("  ", depth), n.Cat.Name, n.Cat.ID)

	children, err := n.Children()
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := printSubtree(cmd, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
