package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"animal-shelter/internal/config"
	"animal-shelter/internal/platform/logger"
)

var (
	version = "dev"
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:           "animal-shelter",
	Short:         "API de adopciones del refugio",
	Long:          `Registro de usuarios y animales, adopción dirigida o por tipo y listado de adopciones.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (yaml); env vars and flags override it")
	rootCmd.PersistentFlags().String("port", "", "HTTP port (env PORT)")
	rootCmd.PersistentFlags().String("db-driver", "", "sqlite | postgres (env DB_DRIVER)")
	rootCmd.PersistentFlags().String("db-path", "", "SQLite file (env DB_PATH)")
	rootCmd.PersistentFlags().String("db-dsn", "", "PostgreSQL DSN (env DB_DSN)")
	rootCmd.PersistentFlags().String("log-level", "", "debug | info | warn | error (env LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd, migrateCmd, healthcheckCmd)
}

func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	return config.Load(config.LoadOptions{ConfigFile: cfgFile, Flags: flags})
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
}
