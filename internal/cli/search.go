package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <substring>",
		Short: "Find parts by part number, device code, or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, conn, err := openCatalog()
			if err != nil {
				return exitError(exitSysError, err.Error())
			}
			defer conn.Disconnect()

			parts, err := factory.Search(args[0])
			if err != nil {
				return err
			}
			for _, p := range parts.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n",
					p.ID, p.PartNum, p.DeviceCode, p.Description)
			}
			return nil
		},
	}
}
