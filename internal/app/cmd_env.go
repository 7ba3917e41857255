package app

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-app-kit/internal/envfile"
	"github.com/spf13/cobra"
)

func (a *App) envCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Generate and inspect environment files",
	}
	cmd.AddCommand(a.envWriteCommand(), a.envShowCommand())
	return cmd
}

func (a *App) envWriteCommand() *cobra.Command {
	var (
		output string
		preset string
		flags  = envfile.Flags{APIBaseURL: envfile.DefaultAPIBaseURL}
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the environment file read by the frontend build",
		Example: `  appkit env write --debug --mock-on-failure
  appkit env write --preset production -o .env.production.local`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := flags
			if preset != "" {
				p, err := envfile.Preset(preset)
				if err != nil {
					return err
				}
				values = applyChanged(cmd, p, flags)
			}

			if err := envfile.NewWriter(output, a.logger).Write(values); err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "wrote %s\n", output)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", envfile.DefaultPath, "Output file")
	f.StringVar(&preset, "preset", "", "Start from a preset: "+strings.Join(envfile.PresetNames(), ", "))
	f.StringVar(&flags.APIBaseURL, "api-base-url", flags.APIBaseURL, "Backend API base URL")
	f.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	f.BoolVar(&flags.UseMockDataOnFailure, "mock-on-failure", false, "Fall back to mock data when the API fails")
	f.BoolVar(&flags.DebugMode, "debug-mode", false, "Enable debug-only UI")
	f.BoolVar(&flags.ShowAPIErrors, "show-api-errors", false, "Show verbose API errors")

	return cmd
}

// applyChanged overlays the flags the user passed explicitly onto a preset.
func applyChanged(cmd *cobra.Command, preset, flags envfile.Flags) envfile.Flags {
	f := cmd.Flags()
	if f.Changed("api-base-url") {
		preset.APIBaseURL = flags.APIBaseURL
	}
	if f.Changed("debug") {
		preset.Debug = flags.Debug
	}
	if f.Changed("mock-on-failure") {
		preset.UseMockDataOnFailure = flags.UseMockDataOnFailure
	}
	if f.Changed("debug-mode") {
		preset.DebugMode = flags.DebugMode
	}
	if f.Changed("show-api-errors") {
		preset.ShowAPIErrors = flags.ShowAPIErrors
	}
	return preset
}

func (a *App) envShowCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the values of an environment file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := envfile.Read(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "%s=%s\n", envfile.KeyAPIBaseURL, flags.APIBaseURL)
			fmt.Fprintf(a.stdout, "%s=%t\n", envfile.KeyDebug, flags.Debug)
			fmt.Fprintf(a.stdout, "%s=%t\n", envfile.KeyUseMockDataOnFailure, flags.UseMockDataOnFailure)
			fmt.Fprintf(a.stdout, "%s=%t\n", envfile.KeyDebugMode, flags.DebugMode)
			fmt.Fprintf(a.stdout, "%s=%t\n", envfile.KeyShowAPIErrors, flags.ShowAPIErrors)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", envfile.DefaultPath, "Environment file to read")
	return cmd
}
