package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/partshelf/partshelf/pkg/catalog"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage category tree nodes",
	}

	var parentPath string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category, at root level or under --parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			var parent *catalog.Node
			if parentPath != "" {
				p, err := factory.CategoryByPath(parentPath)
				if err != nil {
					return fmt.Errorf("parent %q: %w", parentPath, err)
				}
				parent = p
			}
			node, err := factory.AddCategory(parent, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created category %q (id=%d, path=%q)\n",
				node.Cat.Name, node.Cat.ID, node.Cat.Path)
			return nil
		},
	}
	add.Flags().StringVar(&parentPath, "parent", "", "materialized path of the parent category")

	rename := &cobra.Command{
		Use:   "rename <path> <new-name>",
		Short: "Rename a category (materialized paths stay frozen)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			node, err := factory.CategoryByPath(args[0])
			if err != nil {
				return err
			}
			if err := factory.RenameCategory(node, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed category %d to %q\n", node.Cat.ID, args[1])
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a category subtree with its parts and documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			node, err := factory.CategoryByPath(args[0])
			if err != nil {
				return err
			}
			if err := factory.DeleteCategory(node); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted category subtree %q\n", args[0])
			return nil
		},
	}

	movePart := &cobra.Command{
		Use:   "move-part <part-id> <path>",
		Short: "Move a part into another category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			partID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("part id %q: %w", args[0], err)
			}
			part, err := factory.PartByID(partID)
			if err != nil {
				return err
			}
			node, err := factory.CategoryByPath(args[1])
			if err != nil {
				return err
			}
			if err := factory.MovePart(part, node); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "moved part %d to %q\n", partID, args[1])
			return nil
		},
	}

	cmd.AddCommand(add, rename, del, movePart)
	return cmd
}
