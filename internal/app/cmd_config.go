package app

import (
	"encoding/json"

	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as JSON, secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.loadOptions(cmd))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(a.stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg.Redacted())
		},
	}
	config.BindFlags(show.Flags())

	cmd.AddCommand(show)
	return cmd
}
