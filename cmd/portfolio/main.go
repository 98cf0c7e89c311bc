// Command portfolio runs the portfolio site server and its maintenance
// subcommands. Configuration comes from the environment; a .env file in the
// working directory is loaded when present.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with an admin panel and document-store API",
}

func main() {
	_ = godotenv.Load()
	rootCmd.AddCommand(serveCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
