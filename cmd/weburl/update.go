package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blang/semver"
	"github.com/charmbracelet/huh"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepo = "blackcoderx/weburl"

var assumeYes bool

func init() {
	updateCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "update without asking")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update weburl to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if version == "dev" {
			fmt.Fprintln(w, "development build: self-update is not supported")
			return nil
		}

		current, err := semver.Parse(version)
		if err != nil {
			return fmt.Errorf("failed to parse current version %q: %w", version, err)
		}

		latest, found, err := selfupdate.DetectLatest(releaseRepo)
		if err != nil {
			return fmt.Errorf("failed to detect latest release: %w", err)
		}
		if !found || latest.Version.LTE(current) {
			fmt.Fprintf(w, "weburl %s is up to date\n", current)
			return nil
		}

		if !assumeYes {
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Update weburl %s to %s?", current, latest.Version)).
				Value(&confirmed).
				Run()
			if err != nil || !confirmed {
				return nil
			}
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate executable: %w", err)
		}
		slog.Debug("updating binary", "path", exe, "asset", latest.AssetURL)
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}
		fmt.Fprintf(w, "updated to %s\n", latest.Version)
		return nil
	},
}
