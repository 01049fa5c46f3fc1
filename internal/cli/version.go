package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the partshelf release version.
const Version = "0.1.0"

const modulePath = "github.com/partshelf/partshelf"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the partshelf version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "partshelf v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
