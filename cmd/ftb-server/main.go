package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/cli/migrate"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ftb-server",
		Short: "FTB Server - hotel booking back office",
		Long:  `FTB Server is the hotel booking back office with bKash tokenized checkout, booking management, and the hotel catalog API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
