package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/care/pkg/cli/config"
	"github.com/m-mizutani/care/pkg/domain/interfaces"
	"github.com/m-mizutani/care/pkg/domain/model"
	"github.com/m-mizutani/care/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type runOptions struct {
	stdout io.Writer
	stderr io.Writer
	probe  interfaces.ClassifierProbe
}

// Option configures Run
type Option func(*runOptions)

// WithStdout sets the writer receiving the result
func WithStdout(w io.Writer) Option {
	return func(o *runOptions) {
		o.stdout = w
	}
}

// WithStderr sets the writer receiving logs, warnings and usage errors
func WithStderr(w io.Writer) Option {
	return func(o *runOptions) {
		o.stderr = w
	}
}

// WithClassifierProbe replaces the content classifier selected by configuration
func WithClassifierProbe(probe interfaces.ClassifierProbe) Option {
	return func(o *runOptions) {
		o.probe = probe
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	options := runOptions{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&options)
	}

	var (
		loggerCfg    config.Logger
		detectionCfg config.Detection
		outputCfg    config.Output
		fileCfg      config.File
		archivePath  string
		logger       *slog.Logger
	)

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)
	flags = append(flags, detectionCfg.Flags()...)

	app := &cli.Command{
		Name:      "care",
		Usage:     "Count the root entries of an archive",
		UsageText: "care [options] <archive>",
		Version:   types.Version,
		Writer:    options.stdout,
		ErrWriter: options.stderr,
		Flags:     flags,
		MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{
			detectionCfg.MutuallyExclusiveFlags(),
			outputCfg.MutuallyExclusiveFlags(),
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "archive",
				UsageText:   "path to a zip or (compressed) tar archive",
				Destination: &archivePath,
			},
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		// usage errors go to the error stream without help text
		OnUsageError: func(_ context.Context, c *cli.Command, err error, _ bool) error {
			fmt.Fprintf(c.Root().ErrWriter, "Incorrect Usage: %s\n", err.Error())
			return err
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure(options.stderr)
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if archivePath == "" {
				return goerr.New("archive path is required")
			}
			if c.Args().Len() > 0 {
				return goerr.New("too many arguments", goerr.V("args", c.Args().Slice()))
			}

			detection, err := detectionCfg.Detection()
			if err != nil {
				return err
			}

			inspect, err := buildInspect(&fileCfg, &detectionCfg, &options)
			if err != nil {
				return err
			}

			report, err := inspect.Inspect(ctx, &model.InspectRequest{
				Path:      archivePath,
				Detection: detection,
			})
			if err != nil {
				return err
			}

			return printReport(options.stdout, report, &outputCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(options.stderr, nil))
		}
		if isClassified(err) {
			logger.Info("Archive inspection failed", slog.Any("error", err))
		} else {
			logger.Error("CLI execution failed", slog.Any("error", err))
		}
		return err
	}

	return nil
}

func isClassified(err error) bool {
	return errors.Is(err, model.ErrTypeUnrecognizable) || errors.Is(err, model.ErrArchiveRead)
}

// ExitCode maps an error returned by Run to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, model.ErrTypeUnrecognizable):
		return 1
	case errors.Is(err, model.ErrArchiveRead):
		return 2
	default:
		return 1
	}
}
