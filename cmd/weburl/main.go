package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/blackcoderx/weburl/pkg/core"
	"github.com/blackcoderx/weburl/pkg/logging"
	"github.com/blackcoderx/weburl/pkg/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile   string
	envTarget string
	rootCmd   = &cobra.Command{
		Use:   "weburl",
		Short: "weburl - copy-ready requests for your controller endpoints",
		Long: `weburl reads a catalog of controller classes and renders their endpoints
as curl commands, python requests snippets or plain URLs, resolved against
named environments with global headers and default parameter values.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(viper.GetString("log_format"), viper.GetString("log_level"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	defaults := storage.DefaultSettings()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "settings file (default is .weburl/settings.yaml)")
	flags.String("catalog", defaults.Catalog, "catalog file describing controller classes")
	flags.StringVarP(&envTarget, "env", "e", "", "environment id or name (default is the active one)")
	flags.Bool("copy", defaults.Copy, "copy the rendered artifact to the clipboard")
	flags.Bool("pretty", defaults.Pretty, "syntax-highlight the rendered artifact")
	flags.String("log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", defaults.LogFormat, "log format (text, json)")

	_ = viper.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = viper.BindPFlag("copy", flags.Lookup("copy"))
	_ = viper.BindPFlag("pretty", flags.Lookup("pretty"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", flags.Lookup("log-format"))
	viper.SetDefault("format", defaults.Format)
}

func initConfig() {
	// Load .env file if it exists so {{env:NAME}} references can see it
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(core.WorkspaceFolderName)
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix("WEBURL")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Warning: Failed to read settings: %v\n", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
