package app

import (
	"github.com/MKhiriev/go-app-kit/internal/adapter"
	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/debuglog"
	"github.com/MKhiriev/go-app-kit/internal/service"
	"github.com/spf13/cobra"
)

func (a *App) smokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Log in and list items against the configured backend",
		Long: `smoke posts the credentials to the login endpoint, then calls the listing
endpoint with the returned token and prints a summary. A development mock
user token, when configured, replaces the login call. Any failure is dumped
to stderr and makes the command exit non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.loadOptions(cmd)

			cfg, err := config.Load(opts)
			if err != nil {
				return err
			}
			smokeCfg, err := config.LoadSmoke(opts)
			if err != nil {
				return err
			}

			api := adapter.NewHTTPAPIAdapter(adapter.HTTPClientConfig{
				BaseURL:   cfg.API.BaseURL,
				LoginPath: smokeCfg.LoginPath,
				ItemsPath: smokeCfg.ItemsPath,
				Timeout:   smokeCfg.Timeout,
				Overrides: cfg.Overrides(),
			}, a.logger)

			svc := service.NewSmokeService(api, *smokeCfg, cfg.Overrides(), debuglog.FromConfig(cfg, a.stderr), a.logger)
			reports := service.NewReportWriter()

			report, err := svc.Run(cmd.Context())
			if err != nil {
				if werr := reports.WriteFailure(a.stderr, err); werr != nil {
					a.logger.Error().Err(werr).Msg("failed to write smoke failure report")
				}
				return err
			}
			return reports.WriteReport(a.stdout, report)
		},
	}

	config.BindFlags(cmd.Flags())
	config.BindSmokeFlags(cmd.Flags())
	return cmd
}
