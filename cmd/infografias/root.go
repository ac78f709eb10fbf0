package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"infografias.nextwaveia.mx/internal/app"
	"infografias.nextwaveia.mx/internal/catalog"
	"infografias.nextwaveia.mx/internal/logging"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "infografias",
		Short: "Serve the NextWave IA pricing infographics",
		Long: `infografias serves the NextWave IA web development packages as a two-part
pricing page, plus a small JSON API over the same catalog.

Running without a subcommand is the same as "infografias serve".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Int("port", 4000, "HTTP server port")
	flags.String("env", "development", "Environment (development|staging|testing|production)")
	flags.Int("rate-limit", 100, "Requests per second allowed per client (0 disables)")
	flags.String("catalog", "", "Path to a catalog YAML file (default: embedded catalog)")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")
	flags.StringSlice("env-file", []string{".env"}, "Dotenv files to load before reading INFOGRAFIAS_* variables")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newCatalogCmd())

	return rootCmd
}

// loadConfig reads the environment, then applies every flag that was set on
// the command line.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	flags := cmd.Flags()

	dotenvFiles, err := flags.GetStringSlice("env-file")
	if err != nil {
		return app.Config{}, err
	}
	cfg, err := app.LoadConfig(dotenvFiles...)
	if err != nil {
		return app.Config{}, err
	}

	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("env") {
		env, _ := flags.GetString("env")
		cfg.Env = app.ParseEnvironment(env)
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit, _ = flags.GetInt("rate-limit")
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath, _ = flags.GetString("catalog")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg app.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewStructuredLogger(w, level).With(slog.String("env", cfg.Env.String())), nil
}

// setup loads configuration, logger and catalog for a command.
func setup(cmd *cobra.Command) (*app.Application, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, err
	}

	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logging.LogError(logger, "failed to load catalog", err,
			slog.String("catalog_path", cfg.CatalogPath))
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return app.New(cfg, logger, c), nil
}
