package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partshelf/partshelf/pkg/types"
)

func newPartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part",
		Short: "Manage inventory parts",
	}

	var fieldArgs []string
	add := &cobra.Command{
		Use:   "add <category-path>",
		Short: "Create a part under a category from --field key=value pairs",
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
			fields, err := parseFieldArgs(fieldArgs)
			if err != nil {
				return err
			}
			part, err := factory.CreatePart(node, fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created part %q (id=%d)\n", part.PartNum, part.ID)
			return nil
		},
	}
	add.Flags().StringArrayVar(&fieldArgs, "field", nil, "field assignment, e.g. --field part_num=R100 --field quantity=25")

	var recursive bool
	list := &cobra.Command{
		Use:   "list <category-path>",
		Short: "List parts under a category",
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
			parts, err := factory.PartsUnder(node, recursive)
			if err != nil {
				return err
			}
			for _, p := range parts.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\tqty=%d\n",
					p.ID, p.PartNum, p.Description, p.Quantity)
			}
			return nil
		},
	}
	list.Flags().BoolVarP(&recursive, "recursive", "r", false, "include descendant categories")

	show := &cobra.Command{
		Use:   "show <part-id>",
		Short: "Show all fields and documents of a part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("part id %q: %w", args[0], err)
			}
			part, err := factory.PartByID(id)
			if err != nil {
				return err
			}

			fields := part.Fields()
			for _, name := range types.PartFieldNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", name, fields[name])
			}

			docs, err := factory.DocumentsOf(part)
			if err != nil {
				return err
			}
			for _, d := range docs {
				fmt.Fprintf(cmd.OutOrStdout(), "document %d: kind=%d uri=%s\n", d.ID, d.Kind, d.URI)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <part-id>",
		Short: "Delete a part and its documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("part id %q: %w", args[0], err)
			}
			part, err := factory.PartByID(id)
			if err != nil {
				return err
			}
			if err := factory.DeletePart(part); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted part %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, list, show, del)
	return cmd
}

// parseFieldArgs converts key=value strings into a typed field map.
func parseFieldArgs(pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("field %q: expected key=value", pair)
		}
		value, err := parseFieldValue(key, raw)
		if err != nil {
			return nil, err
		}
		fields[key] = value
	}
	return fields, nil
}

// parseFieldValue parses a raw string into the Go value matching the
// field's declared kind.
func parseFieldValue(field, raw string) (any, error) {
	def, ok := types.FieldByName(field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownField, field)
	}

	switch def.Kind {
	case types.KindInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return n, nil
	case types.KindReal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return f, nil
	case types.KindBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return b, nil
	default:
		return raw, nil
	}
}
