package main

import (
	"fmt"
	"os"

	"github.com/blackcoderx/weburl/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .weburl workspace in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		created, err := core.InitializeWorkspace(dir)
		if err != nil {
			return fmt.Errorf("failed to initialize workspace: %w", err)
		}
		if !created {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already initialized\n", core.WorkspacePath(dir))
			return nil
		}

		// Re-read settings now that the file exists
		_ = viper.ReadInConfig()
		fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", core.WorkspacePath(dir))
		return nil
	},
}
