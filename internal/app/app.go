package app

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-app-kit/internal/config"
	"github.com/MKhiriev/go-app-kit/internal/logger"
	"github.com/MKhiriev/go-app-kit/models"
	"github.com/spf13/cobra"
)

const appName = "appkit"

// App holds the state shared by the commands of one invocation.
type App struct {
	buildInfo models.AppBuildInfo

	stdout io.Writer
	stderr io.Writer

	// environ replaces os.Environ() when non-nil.
	environ []string

	envFile    string
	configFile string
	verbose    bool

	logger *logger.Logger
}

// New returns an App writing command output to stdout and diagnostics to
// stderr.
func New(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *App {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &App{
		buildInfo: buildInfo,
		stdout:    stdout,
		stderr:    stderr,
		logger:    logger.Nop(),
	}
}

// Execute runs the command line args. Blocking commands stop when ctx is
// done.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// Command builds the root command and its subcommands.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Configuration and diagnostics toolkit for the web client",
		Long:          "appkit generates environment files, inspects the resolved configuration,\nsmoke-tests the backend API and serves a mock backend.",
		Version:       a.buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logger.NewConsoleLogger(appName, a.stderr, a.verbose)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "Dotenv file to load (default .env and .env.local when present)")
	pf.StringVar(&a.configFile, "config", "", "JSON configuration file (default $CONFIG)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(
		a.envCommand(),
		a.configCommand(),
		a.smokeCommand(),
		a.mockServerCommand(),
		a.versionCommand(),
	)

	return root
}

// loadOptions returns the configuration sources for cmd.
func (a *App) loadOptions(cmd *cobra.Command) config.Options {
	return config.Options{
		EnvFile:  a.envFile,
		JSONFile: a.configFile,
		Flags:    cmd.Flags(),
		Environ:  a.environ,
		Logger:   a.logger,
	}
}
