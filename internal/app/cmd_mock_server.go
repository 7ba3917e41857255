package app

import (
	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/handler"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/internal/server"
	"github.com/MKhiriev/go-app-kit/internal/service"
	"github.com/spf13/cobra"
)

func (a *App) mockServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve a fixture backend for the login and listing endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.loadOptions(cmd)

			cfg, err := config.Load(opts)
			if err != nil {
				return err
			}
			mockCfg, err := config.LoadMockServer(opts)
			if err != nil {
				return err
			}

			// The server logs JSON access entries to stdout.
			srvLog := logger.NewLogger(appName+"-mock-server", a.stdout)

			services, err := service.NewServices(cfg, *mockCfg, a.buildInfo, srvLog)
			if err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(services, srvLog)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(handlers.HTTP.Init(), mockCfg.Address, srvLog)
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}

	config.BindFlags(cmd.Flags())
	config.BindMockServerFlags(cmd.Flags())
	return cmd
}
