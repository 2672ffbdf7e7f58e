// Package cli implements the vendorcalc command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/VendorEval/internal/catalog"
	"github.com/MikeSquared-Agency/VendorEval/internal/config"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
)

// App holds the root command and the dependencies loaded for subcommands.
type App struct {
	rootCmd *cobra.Command

	configPath string
	noColor    bool
	verbose    bool

	cfg      *config.Config
	catalog  *catalog.Catalog
	template *evaluation.Template
	logger   *slog.Logger

	version string
}

// New creates the CLI application with every subcommand registered.
func New() *App {
	app := &App{version: "dev"}
	app.setupRootCmd()
	app.rootCmd.AddCommand(
		NewVendorsCmd(app),
		NewScoreCmd(app),
		NewSuggestCmd(app),
		NewExportCmd(app),
		NewClassifyCmd(app),
		NewWatchCmd(app),
		NewVersionCmd(app),
	)
	return app
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command.
func (a *App) SetVersion(version string) {
	a.version = version
}

// SetArgs overrides os.Args, for tests.
func (a *App) SetArgs(args []string) {
	a.rootCmd.SetArgs(args)
}

// SetOutput redirects stdout and stderr of every command.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.rootCmd.SetOut(out)
	a.rootCmd.SetErr(errOut)
}

func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "vendorcalc",
		Short: "Vendor evaluation calculator",
		Long: `vendorcalc scores IT vendor evaluations against the weighted template,
suggests ratings from operational metrics and exports the completed form as CSV.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	a.rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file")
	a.rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
}

// load reads config, catalog and template once per invocation.
func (a *App) load(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	cfg.Logging.Format = "text"
	a.cfg = cfg
	a.logger = cfg.Logging.NewLogger(logOut)

	a.catalog, err = catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	a.template, err = evaluation.LoadTemplate(cfg.Template.Path)
	if err != nil {
		return err
	}
	return nil
}

func (a *App) newController() *evaluation.Controller {
	return evaluation.NewController(a.template, a.catalog, a.logger)
}

// readForm decodes a YAML or JSON form file; "-" reads stdin.
func readForm(path string, stdin io.Reader) (evaluation.FormInput, error) {
	var in evaluation.FormInput

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return in, fmt.Errorf("read form: %w", err)
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("parse form: %w", err)
	}
	return in, nil
}

// loadForm builds a controller from a form file.
func (a *App) loadForm(cmd *cobra.Command, path string) (*evaluation.Controller, error) {
	if path == "" {
		return nil, fmt.Errorf("form file is required (-f)")
	}
	in, err := readForm(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	c := a.newController()
	if err := c.Apply(in); err != nil {
		return nil, err
	}
	return c, nil
}
