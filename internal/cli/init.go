package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the partshelf catalog",
		Long:  "Create the configuration file and the catalog database with its schema.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	_, conn, err := openCatalog()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("initialize catalog: %s", err))
	}
	defer conn.Disconnect()

	fmt.Fprintln(cmd.OutOrStdout(), "Partshelf catalog initialized")
	return nil
}
