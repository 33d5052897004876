package main

import (
	"fmt"

	"github.com/blackcoderx/weburl/pkg/environment"
	"github.com/blackcoderx/weburl/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	envHost        string
	envContextPath string
	envProtocol    string
	envActivate    bool

	updateName        string
	updateHost        string
	updateContextPath string
	updateProtocol    string
)

func init() {
	envAddCmd.Flags().StringVar(&envHost, "host", environment.DefaultHost, "host, optionally with port")
	envAddCmd.Flags().StringVar(&envContextPath, "context-path", "", "context path prefixed to every endpoint")
	envAddCmd.Flags().StringVar(&envProtocol, "protocol", environment.HTTP, "http or https")
	envAddCmd.Flags().BoolVar(&envActivate, "use", false, "make the new environment active")

	envUpdateCmd.Flags().StringVar(&updateName, "name", "", "new display name")
	envUpdateCmd.Flags().StringVar(&updateHost, "host", "", "host, optionally with port")
	envUpdateCmd.Flags().StringVar(&updateContextPath, "context-path", "", "context path prefixed to every endpoint")
	envUpdateCmd.Flags().StringVar(&updateProtocol, "protocol", "", "http or https")

	envCmd.AddCommand(envListCmd, envAddCmd, envUpdateCmd, envRemoveCmd, envUseCmd)
	rootCmd.AddCommand(envCmd)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage environments",
}

var envListCmd = &cobra.Command{
	Use:   "list",
	Short: "List environments; the active one is marked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.EnvironmentTable(store.Raw()))
		return nil
	},
}

var envAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an environment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		env := environment.New(args[0], envHost, envContextPath, envProtocol)
		err = store.Update(func(cfg *environment.Config) error {
			cfg.Add(env)
			if envActivate {
				cfg.SetActive(env.ID)
			}
			return nil
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", env.DisplayName(), env.ID)
		return nil
	},
}

var envUpdateCmd = &cobra.Command{
	Use:   "update <id|name>",
	Short: "Change an environment's name, host, context path or protocol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		return store.Update(func(cfg *environment.Config) error {
			env, ok := cfg.Find(args[0])
			if !ok {
				return fmt.Errorf("environment not found: %s", args[0])
			}
			if flags.Changed("name") {
				env.Name = updateName
			}
			if flags.Changed("host") {
				env.SetHost(updateHost)
			}
			if flags.Changed("context-path") {
				env.SetContextPath(updateContextPath)
			}
			if flags.Changed("protocol") {
				env.SetProtocol(updateProtocol)
			}
			cfg.Update(env)
			return nil
		})
	},
}

var envRemoveCmd = &cobra.Command{
	Use:   "remove <id|name>",
	Short: "Remove an environment (the last one cannot be removed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return store.Update(func(cfg *environment.Config) error {
			env, ok := cfg.Find(args[0])
			if !ok {
				return fmt.Errorf("environment not found: %s", args[0])
			}
			if !cfg.Remove(env.ID) {
				return fmt.Errorf("cannot remove %s: at least one environment must remain", env.DisplayName())
			}
			return nil
		})
	},
}

var envUseCmd = &cobra.Command{
	Use:   "use <id|name>",
	Short: "Make an environment active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return store.Update(func(cfg *environment.Config) error {
			env, ok := cfg.Find(args[0])
			if !ok {
				return fmt.Errorf("environment not found: %s", args[0])
			}
			cfg.SetActive(env.ID)
			return nil
		})
	},
}
