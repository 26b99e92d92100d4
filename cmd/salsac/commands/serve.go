package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"salsac-engine/internal/config"
	"salsac-engine/internal/server"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP calculation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = strconv.Itoa(port)
			}
			if regimeFile != "" {
				cfg.RegimeFile = regimeFile
			}
			return server.Run(cfg, config.NewLogger(cfg.LogLevel))
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "HTTP server port (overrides PORT)")
	return cmd
}
