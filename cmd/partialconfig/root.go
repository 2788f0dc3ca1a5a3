package main

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/logger"
)

const appName = "partialconfig"

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Print the effective server configuration",
		Long: `partialconfig merges the server configuration from built-in defaults,
a configuration file, a remote document, a settings database, environment
variables and command-line flags, in that order, and prints the result as JSON.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(loadOptions(cmd, verbose))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out, err := sonic.ConfigStd.MarshalIndent(newEffectiveConfig(cfg), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log every configuration layer to stderr")
	cobra.CheckErr(config.RegisterFlags(rootCmd.PersistentFlags()))

	rootCmd.AddCommand(newVarsCommand())
	rootCmd.AddCommand(newSettingsCommand(&verbose))
	rootCmd.AddCommand(newServeCommand(&verbose))

	return rootCmd
}

func loadOptions(cmd *cobra.Command, verbose bool) config.LoadOptions {
	log := logger.NewLogger(appName, cmd.ErrOrStderr())
	if verbose {
		log, _ = log.WithLevel("debug")
	} else {
		log, _ = log.WithLevel("warn")
	}

	return config.LoadOptions{
		Context: cmd.Context(),
		Flags:   cmd.Flags(),
		Logger:  log,
	}
}

// effectiveConfig is the printed form of config.ServerConfig.
type effectiveConfig struct {
	Address        string  `json:"address"`
	GRPCAddress    *string `json:"grpc_address"`
	RequestTimeout string  `json:"request_timeout"`
	DatabaseURI    *string `json:"database_uri"`
	TokenIssuer    *string `json:"token_issuer"`
	LogLevel       string  `json:"log_level"`
	ConfigFile     *string `json:"config_file"`
	RemoteURL      *string `json:"remote_url"`
	SettingsDSN    *string `json:"settings_dsn"`
	SettingsScope  string  `json:"settings_scope"`
}

func newEffectiveConfig(cfg *config.ServerConfig) effectiveConfig {
	out := effectiveConfig{
		Address:        cfg.Address.String(),
		RequestTimeout: cfg.RequestTimeout.String(),
		DatabaseURI:    cfg.DatabaseURI,
		TokenIssuer:    cfg.TokenIssuer.Ptr(),
		LogLevel:       cfg.LogLevel,
		ConfigFile:     cfg.ConfigFile,
		RemoteURL:      cfg.RemoteURL,
		SettingsDSN:    cfg.SettingsDSN,
		SettingsScope:  cfg.SettingsScope,
	}
	if cfg.GRPCAddress != nil {
		addr := cfg.GRPCAddress.String()
		out.GRPCAddress = &addr
	}
	return out
}
