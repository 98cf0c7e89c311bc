package main

import (
	"github.com/spf13/cobra"

	"github.com/meiq/portfolio"
	"github.com/meiq/portfolio/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfolio.LoadConfig()
		if err != nil {
			return err
		}
		app := portfolio.New(cfg, views.Funcs())
		defer app.Close()
		return app.Start()
	},
}
