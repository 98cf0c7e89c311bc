package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meiq/portfolio"
)

var seedCmd = &cobra.Command{
	Use:   "seed <fixture.json>",
	Short: "Import a JSON fixture into the configured store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := portfolio.LoadConfig()
		if err != nil {
			return err
		}
		var store portfolio.Store
		if cfg.StoreURL != "" {
			store = portfolio.NewRemoteStore(cfg.StoreURL)
		} else {
			store, err = portfolio.NewSQLiteStore(cfg.DatabasePath)
			if err != nil {
				return err
			}
		}
		defer store.Close()

		if err := portfolio.Seed(store, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "seed complete")
		return nil
	},
}
