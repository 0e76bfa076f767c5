package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/balsons/erp-backend-go/internal/app"
	"github.com/balsons/erp-backend-go/internal/config"
	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/validator"
	"github.com/spf13/cobra"
)

const (
	exitOK         = 0
	exitUsage      = 2
	exitValidation = 3
	exitStore      = 4
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

type appKey struct{}

func appFrom(ctx context.Context) *app.App {
	return ctx.Value(appKey{}).(*app.App)
}

// cli owns the app opened by the root command so it is closed however the
// command ends.
type cli struct {
	app *app.App
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
		c.app = nil
	}
}

func newRootCmd() (*cobra.Command, *cli) {
	var verbose bool
	c := &cli{}

	root := &cobra.Command{
		Use:           "empctl",
		Short:         "Manage the employee master from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return withCode(exitUsage, err)
			}

			level, _ := cfg.SlogLevel()
			if !verbose && level < slog.LevelWarn {
				level = slog.LevelWarn
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return withCode(exitStore, err)
			}
			c.app = a
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured LOG_LEVEL instead of warn")

	root.AddCommand(
		newListCmd(),
		newAddCmd(),
		newUpdateCmd(),
		newImportCmd(),
		newDeleteCmd(),
		newSummaryCmd(),
		newExportCmd(),
	)
	return root, c
}

// classify maps domain errors to process exit codes.
func classify(err error) error {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrUnsupportedFormat),
		errors.Is(err, employee.ErrUnsupportedExport),
		errors.Is(err, employee.ErrNoImportRows):
		return withCode(exitValidation, err)
	case errors.Is(err, employee.ErrPersistenceFailure),
		errors.Is(err, employee.ErrCorruptTable):
		return withCode(exitStore, err)
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return withCode(exitValidation, err)
	}
	return err
}

func main() {
	root, c := newRootCmd()
	err := root.ExecuteContext(context.Background())
	c.close()
	if err == nil {
		os.Exit(exitOK)
	}

	fmt.Fprintln(os.Stderr, "error:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	os.Exit(1)
}
