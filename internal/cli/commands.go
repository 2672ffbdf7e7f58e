package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/export"
	"github.com/MikeSquared-Agency/VendorEval/internal/hermes"
)

func (a *App) styles() Styles {
	return DefaultStyles(!a.noColor)
}

// NewVendorsCmd lists the vendor catalog.
func NewVendorsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "vendors",
		Short: "List catalog vendors, services and SLAs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			RenderVendors(cmd.OutOrStdout(), app.styles(), app.catalog.Vendors())
			return nil
		},
	}
}

// NewScoreCmd scores a form file.
func NewScoreCmd(app *App) *cobra.Command {
	var formPath string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an evaluation form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadForm(cmd, formPath)
			if err != nil {
				return err
			}
			RenderResult(cmd.OutOrStdout(), app.styles(), c.Evaluation(), c.Result())
			return nil
		},
	}
	cmd.Flags().StringVarP(&formPath, "file", "f", "", "form file (YAML or JSON, - for stdin)")
	return cmd
}

// NewSuggestCmd fills calculator-bound ratings from the form's ticket and SLA data.
func NewSuggestCmd(app *App) *cobra.Command {
	var formPath string
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest ratings from ticket statistics and SLA times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadForm(cmd, formPath)
			if err != nil {
				return err
			}
			suggested, res := c.SuggestRatings()
			st := app.styles()
			out := cmd.OutOrStdout()
			if len(suggested) == 0 {
				fmt.Fprintln(out, st.Muted.Render("No hay datos suficientes para sugerir calificaciones."))
			}
			for _, s := range suggested {
				RenderClassification(out, st, s)
				fmt.Fprintln(out)
			}
			RenderResult(out, st, c.Evaluation(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&formPath, "file", "f", "", "form file (YAML or JSON, - for stdin)")
	return cmd
}

// NewExportCmd writes the CSV export of a form file.
func NewExportCmd(app *App) *cobra.Command {
	var formPath, outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an evaluation form as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadForm(cmd, formPath)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = app.cfg.Export.Filename
			}
			if outPath == "-" {
				return export.Write(cmd.OutOrStdout(), c.Evaluation(), c.Result())
			}

			data, err := export.Bytes(c.Evaluation(), c.Result())
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			app.logger.Info("export written", "path", outPath, "bytes", len(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&formPath, "file", "f", "", "form file (YAML or JSON, - for stdin)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default from config, - for stdout)")
	return cmd
}

// NewClassifyCmd runs one metric calculator.
func NewClassifyCmd(app *App) *cobra.Command {
	var in classifier.Input
	cmd := &cobra.Command{
		Use:   "classify <kind>",
		Short: "Suggest a rating from a raw metric",
		Long: `Suggest a 1-5 rating from a raw operational metric.

Kinds: response-time, problem-resolution (--agreed, --actual in minutes or as durations such as "2 horas"),
uptime (--uptime), tickets-resolved (--opened, --resolved), reopen-rate (--resolved, --reopened),
deliverables (--committed, --delivered as YYYY-MM-DD).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := classifier.ParseKind(args[0])
			if err != nil {
				return err
			}
			agreed, _ := cmd.Flags().GetString("agreed")
			actual, _ := cmd.Flags().GetString("actual")
			if in.AgreedMinutes, err = classifier.ParseMinutes(agreed); err != nil {
				return fmt.Errorf("--agreed: %w", err)
			}
			if in.ActualMinutes, err = classifier.ParseMinutes(actual); err != nil {
				return fmt.Errorf("--actual: %w", err)
			}

			r, err := app.newController().Calculate(kind, in)
			if err != nil {
				return err
			}
			RenderClassification(cmd.OutOrStdout(), app.styles(), r)
			return nil
		},
	}
	cmd.Flags().String("agreed", "", "agreed time in minutes or e.g. \"2 horas\"")
	cmd.Flags().String("actual", "", "actual time in minutes or e.g. \"90 mins\"")
	cmd.Flags().Float64Var(&in.UptimePct, "uptime", 0, "uptime percentage")
	cmd.Flags().IntVar(&in.Opened, "opened", 0, "tickets opened")
	cmd.Flags().IntVar(&in.Resolved, "resolved", 0, "tickets resolved")
	cmd.Flags().IntVar(&in.Reopened, "reopened", 0, "tickets reopened")
	cmd.Flags().StringVar(&in.CommittedDate, "committed", "", "committed delivery date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.ActualDate, "delivered", "", "actual delivery date (YYYY-MM-DD)")
	return cmd
}

// NewWatchCmd prints evaluation events published by a running server.
func NewWatchCmd(app *App) *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream evaluation events from NATS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = app.cfg.Hermes.URL
			}
			if url == "" {
				return fmt.Errorf("no NATS URL: set --url or VENDOREVAL_HERMES_URL")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := hermes.NewNATSClient(ctx, url, app.logger, hermes.WithName("vendorcalc"), hermes.WithMaxAge(app.cfg.Hermes.MaxAge))
			if err != nil {
				return err
			}
			defer client.Close()

			return watch(ctx, client, cmd.OutOrStdout(), app.styles())
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "NATS URL (default from config)")
	return cmd
}

func watch(ctx context.Context, client hermes.Client, out io.Writer, st Styles) error {
	if err := client.Subscribe(hermes.SubjectAll, func(subject string, data []byte) {
		fmt.Fprintf(out, "%s %s\n", st.Label.Render(subject), data)
	}); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	<-ctx.Done()
	return nil
}

// NewVersionCmd prints the build version.
func NewVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "vendorcalc version %s\n", app.version)
			return nil
		},
	}
}
