package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"animal-shelter/internal/platform/httpclient"
)

var healthcheckURL string

// Pensado para HEALTHCHECK de contenedores: exit != 0 si la API no está sana.
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Consulta /health de una API en marcha",
	RunE: func(cmd *cobra.Command, _ []string) error {
		base := healthcheckURL
		if base == "" {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			base = "http://127.0.0.1" + cfg.Addr()
		}

		c, err := httpclient.NewWithBaseURL(base, 3*time.Second)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := c.Health(ctx); err != nil {
			return fmt.Errorf("unhealthy: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthcheckURL, "url", "", "base URL of the API (default http://127.0.0.1:$PORT)")
}
