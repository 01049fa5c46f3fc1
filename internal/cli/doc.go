package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/partshelf/partshelf/pkg/types"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage documents attached to parts",
	}

	var kind int64
	add := &cobra.Command{
		Use:   "add <part-id> <uri>",
		Short: "Attach a document link to a part",
		Long:  "Attach a document link to a part. Without --kind the document kind is inferred from the file extension.",
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
			doc, err := factory.AttachDocument(part, args[1], types.DocKind(kind))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "attached document %d (kind=%d) to part %d\n",
				doc.ID, doc.Kind, partID)
			return nil
		},
	}
	add.Flags().Int64Var(&kind, "kind", int64(types.DocDefault), "document kind code (default: infer from extension)")

	list := &cobra.Command{
		Use:   "list <part-id>",
		Short: "List documents attached to a part",
		Args:  cobra.ExactArgs(1),
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
			docs, err := factory.DocumentsOf(part)
			if err != nil {
				return err
			}
			for _, d := range docs {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\tkind=%d\t%s\n", d.ID, d.Kind, d.URI)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <part-id> <doc-id>",
		Short: "Detach a document from its part",
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
			docID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("doc id %q: %w", args[1], err)
			}

			part, err := factory.PartByID(partID)
			if err != nil {
				return err
			}
			docs, err := factory.DocumentsOf(part)
			if err != nil {
				return err
			}
			for _, d := range docs {
				if d.ID == docID {
					if err := factory.DetachDocument(part, d); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "detached document %d\n", docID)
					return nil
				}
			}
			return fmt.Errorf("document %d on part %d: %w", docID, partID, types.ErrNotFound)
		},
	}

	cmd.AddCommand(add, list, del)
	return cmd
}
