package main

import (
	"os"

	"github.com/spf13/cobra"

	"vitalis/internal/interfaces/cli/migrate"
	"vitalis/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitalis",
		Short: "Vitalis - health content platform backend",
		Long:  `Vitalis serves the public health content API and the admin CMS, with built-in migration and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
