package main

import (
	"fmt"

	"github.com/blackcoderx/weburl/pkg/core"
	"github.com/blackcoderx/weburl/pkg/endpoint"
	"github.com/blackcoderx/weburl/pkg/meta"
	"github.com/blackcoderx/weburl/pkg/tui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List controllers and their endpoints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.EndpointTable(endpointRows(core.NewEngine(catalog), catalog)))
		return nil
	},
}

func endpointRows(engine *core.Engine, src meta.Source) []tui.EndpointRow {
	var rows []tui.EndpointRow
	for _, class := range src.Classes() {
		for _, m := range endpoint.RequestMethods(class) {
			d, ok := engine.Describe(class, m)
			if !ok {
				continue
			}
			rows = append(rows, tui.EndpointRow{
				Class:   class.Name,
				Method:  m.Name,
				Verb:    string(d.Verb),
				Path:    d.Path,
				HasBody: d.HasBody,
			})
		}
	}
	return rows
}
