package main

import (
	"github.com/blackcoderx/weburl/pkg/render"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		newRenderCmd(render.Curl, "Render a curl command"),
		newRenderCmd(render.Python, "Render a python requests snippet"),
		newRenderCmd(render.URLPath, "Render the endpoint path"),
		newRenderCmd(render.FullURL, "Render the absolute URL"),
		newRenderCmd(render.RelativeURL, "Render the context-relative URL"),
	)
}

// newRenderCmd builds the command for one output format. A selector naming a
// class renders every endpoint of that class.
func newRenderCmd(format, short string) *cobra.Command {
	return &cobra.Command{
		Use:   format + " <Class>[#method]",
		Short: short,
		Example: "  weburl " + format + " UserController#getUser\n" +
			"  weburl " + format + " UserController --env staging",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderSelector(format, args[0], envTarget)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), out, format)
		},
	}
}
