package main

import (
	"fmt"

	"github.com/blackcoderx/weburl/pkg/core"
	"github.com/blackcoderx/weburl/pkg/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:     "diff <format> <Class>[#method] <envA> <envB>",
	Short:   "Show how an artifact differs between two environments",
	Example: "  weburl diff curl UserController#getUser dev staging",
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, selector, envA, envB := args[0], args[1], args[2], args[3]

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		cfg := store.Snapshot()
		engine := core.NewEngine(catalog)

		a, err := renderWith(engine, catalog, cfg, format, selector, envA)
		if err != nil {
			return err
		}
		b, err := renderWith(engine, catalog, cfg, format, selector, envB)
		if err != nil {
			return err
		}

		if d := render.Diff(envA, envB, a, b); d != "" {
			fmt.Fprint(cmd.OutOrStdout(), d)
		}
		return nil
	},
}
