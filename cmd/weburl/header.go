package main

import (
	"fmt"

	"github.com/blackcoderx/weburl/pkg/environment"
	"github.com/blackcoderx/weburl/pkg/tui"
	"github.com/spf13/cobra"
)

func init() {
	headerCmd.AddCommand(
		newMapSetCmd("set <key> <value>", "Set a header sent with every request", (*environment.Config).SetHeader),
		newMapUnsetCmd("unset <key>", "Remove a header", (*environment.Config).RemoveHeader),
		newMapListCmd("List headers", func(c *environment.Config) map[string]string { return c.Headers }),
	)
	paramCmd.AddCommand(
		newMapSetCmd("set <name> <value>", "Set the value used for a parameter", (*environment.Config).SetDefaultParameter),
		newMapUnsetCmd("unset <name>", "Remove a parameter value", (*environment.Config).RemoveDefaultParameter),
		newMapListCmd("List parameter values", func(c *environment.Config) map[string]string { return c.DefaultParameters }),
	)
	rootCmd.AddCommand(headerCmd, paramCmd)
}

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Manage global request headers",
	Long: `Manage headers added to every rendered request.
Values may reference process environment variables as {{env:NAME}}.`,
}

var paramCmd = &cobra.Command{
	Use:   "param",
	Short: "Manage default parameter values",
	Long: `Manage values that replace the type placeholder of a parameter with
the same name. Values may reference process environment variables as {{env:NAME}}.`,
}

func newMapSetCmd(use, short string, set func(*environment.Config, string, string)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.Update(func(cfg *environment.Config) error {
				set(cfg, args[0], args[1])
				return nil
			})
		},
	}
}

func newMapUnsetCmd(use, short string, unset func(*environment.Config, string)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			return store.Update(func(cfg *environment.Config) error {
				unset(cfg, args[0])
				return nil
			})
		},
	}
}

func newMapListCmd(short string, values func(*environment.Config) map[string]string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.KeyValueTable(values(store.Raw())))
			return nil
		},
	}
}
