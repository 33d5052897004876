package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackcoderx/weburl/pkg/tui"
	"github.com/blackcoderx/weburl/pkg/watch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <format> <Class>[#method]",
	Short: "Re-render an endpoint whenever the catalog or environments change",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, selector := args[0], args[1]

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		changes := make(chan struct{}, 1)
		changes <- struct{}{} // initial render
		go func() {
			if err := watch.Files(ctx, []string{catalogPath(), environmentsPath()}, changes); err != nil {
				slog.Error("failed to watch files", "error", err)
				stop()
			}
		}()

		w := cmd.OutOrStdout()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-changes:
				out, err := renderSelector(format, selector, envTarget)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), tui.ErrorStyle.Render(tui.ErrorPrefix+err.Error()))
					continue
				}
				if err := emit(w, out, format); err != nil {
					slog.Warn("failed to deliver artifact", "error", err)
				}
			}
		}
	},
}
