package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Manage per-category display headers",
	}

	list := &cobra.Command{
		Use:   "list <category-path>",
		Short: "List the header overlay of a category",
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
			set, err := factory.HeadersFor(node)
			if err != nil {
				return err
			}
			for _, h := range set.All() {
				persisted := "persisted"
				if !h.Persisted() {
					persisted = "default"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tdisplay=%q align=%s hidden=%v sort=%v width=%d (%s)\n",
					h.FieldName, h.Display, h.Align, h.Hidden, h.Sort, h.Width, persisted)
			}
			return nil
		},
	}

	var (
		display string
		align   string
		width   int64
		hidden  bool
		sort    bool
	)
	set := &cobra.Command{
		Use:   "set <category-path> <field>",
		Short: "Change header attributes for one field of a category",
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
			hs, err := factory.HeadersFor(node)
			if err != nil {
				return err
			}
			h, err := hs.Header(args[1])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("display") {
				h.SetDisplay(display)
			}
			if cmd.Flags().Changed("align") {
				h.SetAlign(align)
			}
			if cmd.Flags().Changed("width") {
				h.SetWidth(width)
			}
			if cmd.Flags().Changed("hidden") {
				h.SetHidden(hidden)
			}
			if cmd.Flags().Changed("sort") {
				h.SetSort(sort)
			}

			if err := hs.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved header %s for category %q\n", args[1], args[0])
			return nil
		},
	}
	set.Flags().StringVar(&display, "display", "", "display name")
	set.Flags().StringVar(&align, "align", "", "alignment: LEFT, RIGHT, or CENTER")
	set.Flags().Int64Var(&width, "width", 0, "column width")
	set.Flags().BoolVar(&hidden, "hidden", false, "hide the column")
	set.Flags().BoolVar(&sort, "sort", false, "mark the column sortable")

	cmd.AddCommand(list, set)
	return cmd
}
