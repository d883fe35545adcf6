package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/supportsync-io/supportsync/internal/interfaces/cli/createadmin"
	"github.com/supportsync-io/supportsync/internal/interfaces/cli/migrate"
	"github.com/supportsync-io/supportsync/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "supportsync",
		Short: "SupportSync - help desk and feature tracking backend",
		Long:  `SupportSync is a help desk backend with ticketing, feature request voting, attachments, and an administrative dashboard.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		createadmin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
