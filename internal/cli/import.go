package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/partshelf/partshelf/pkg/catalog"
	"github.com/partshelf/partshelf/pkg/types"
)

// importFactory is the slice of the catalog facade the importer is allowed
// to touch.
type importFactory interface {
	CreateCategoryPath(path string) (*catalog.Node, error)
	CreatePart(n *catalog.Node, fields map[string]any) (*types.Part, error)
}

// The importer is a collaborator of the catalog core: it consumes only
// CreateCategoryPath and CreatePart, never headers or documents. Rows that
// fail (missing part_num, unparseable values) are logged and skipped; the
// import continues.

// typePathColumn is the reserved CSV column selecting the category for a
// row. It is not a physical part field.
const typePathColumn = "type_path"

func newImportCmd() *cobra.Command {
	var categoryPath string

	cmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import parts from a CSV file",
		Long: "Import parts from a CSV file with a header row of physical field names.\n" +
			"A type_path column selects the category per row; --category sets a\n" +
			"fallback for rows without one. Missing categories are created.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			log := newLogger(flags.logLevel).With().
				Str("import_id", uuid.NewString()).
				Str("file", args[0]).Logger()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()

			reader := csv.NewReader(f)
			header, err := reader.Read()
			if err != nil {
				return fmt.Errorf("read csv header: %w", err)
			}

			imported, skipped := 0, 0
			for line := 2; ; line++ {
				record, err := reader.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return fmt.Errorf("read csv line %d: %w", line, err)
				}

				if err := importRow(factory, header, record, categoryPath); err != nil {
					log.Warn().Err(err).Int("line", line).Msg("skipping row")
					skipped++
					continue
				}
				imported++
			}

			log.Info().Int("imported", imported).Int("skipped", skipped).Msg("import finished")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d parts, skipped %d rows\n", imported, skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&categoryPath, "category", "", "fallback category path for rows without a type_path column")
	return cmd
}

// importRow maps one CSV record onto a typed field map and creates the
// part under its category, creating missing category segments on the way.
func importRow(factory importFactory, header, record []string, fallbackPath string) error {
	fields := make(map[string]any, len(header))
	path := fallbackPath

	for i, name := range header {
		if i >= len(record) || record[i] == "" {
			continue
		}
		if name == typePathColumn {
			path = record[i]
			continue
		}
		value, err := parseFieldValue(name, record[i])
		if err != nil {
			return err
		}
		fields[name] = value
	}

	if path == "" {
		return fmt.Errorf("row has no type_path and no --category fallback was given")
	}

	node, err := factory.CreateCategoryPath(path)
	if err != nil {
		return err
	}
	_, err = factory.CreatePart(node, fields)
	return err
}
