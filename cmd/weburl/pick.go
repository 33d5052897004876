package main

import (
	"errors"

	"github.com/blackcoderx/weburl/pkg/core"
	"github.com/blackcoderx/weburl/pkg/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a controller, endpoint and format interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		engine := core.NewEngine(catalog)

		pick, err := tui.RunPicker(catalog, engine.Formats(), viper.GetString("format"))
		if errors.Is(err, tui.ErrPickerAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		out, err := renderWith(engine, catalog, store.Snapshot(), pick.Format, pick.Selector(), envTarget)
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), out, pick.Format)
	},
}
