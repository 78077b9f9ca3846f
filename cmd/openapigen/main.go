// Command openapigen generates a TypeScript axios client from an OpenAPI
// 3.0/3.1 description.
//
// Usage:
//
//	openapigen [flags] [<configuration-file>] <openapi-file> <output-dir>
//	openapigen mcp
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/openapigen/openapigen"
	"github.com/openapigen/openapigen/config"
	"github.com/openapigen/openapigen/generator"
	"github.com/openapigen/openapigen/internal/cliutil"
	"github.com/openapigen/openapigen/internal/mcpserver"
	"github.com/openapigen/openapigen/oaserrors"
)

const usageLine = "openapigen [flags] [<configuration-file>] <openapi-file> <output-dir>"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := newApp(stdout, stderr).RunContext(ctx, args)
	if err == nil {
		return 0
	}
	cliutil.Writef(stderr, "Error: %v\n", err)
	var usage *oaserrors.UsageError
	if errors.As(err, &usage) {
		cliutil.Writef(stderr, "Usage: %s\n", usageLine)
		return usage.ExitCode()
	}
	return 1
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "openapigen",
		Usage:     "generate a TypeScript axios client from an OpenAPI 3.0/3.1 description",
		UsageText: usageLine,
		Version:   openapigen.Version(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log verbosity level (debug, info, warn, error)",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log output format (text, json, console)",
				Value: logFormatText,
			},
			&cli.BoolFlag{
				Name:  "no-repair",
				Usage: "disable substitution of typed sibling components for untyped ones",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "serve the generator as MCP tools over stdio",
				Action: runMCP,
			},
		},
		Action: func(cctx *cli.Context) error {
			return runGenerate(cctx, stderr)
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return &oaserrors.UsageError{Message: err.Error()}
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func runGenerate(cctx *cli.Context, stderr io.Writer) error {
	args := cctx.Args().Slice()
	if len(args) < 2 || len(args) > 3 {
		return &oaserrors.UsageError{Message: fmt.Sprintf("expected 2 or 3 arguments, got %d", len(args))}
	}

	logger, flush, err := newLogger(cctx.String("log-level"), cctx.String("log-format"), stderr)
	if err != nil {
		return &oaserrors.UsageError{Message: err.Error()}
	}
	defer flush()

	cfg := config.Empty()
	if len(args) == 3 {
		if cfg, err = config.Load(args[0]); err != nil {
			return err
		}
		args = args[1:]
	}
	specPath, outDir := args[0], args[1]

	g := generator.New()
	g.Repair = !cctx.Bool("no-repair")
	g.IncludeInfo = false
	g.Logger = logger

	result, err := g.Generate(specPath, cfg)
	if err != nil {
		return err
	}
	if err := result.PurgeAndWriteFiles(outDir); err != nil {
		return err
	}

	if result.HasWarnings() {
		cliutil.WriteIssues(stderr, result.Issues)
		cliutil.Writef(stderr, "%s\n", cliutil.Plural(result.WarningCount, "warning"))
	}
	logger.Info("wrote client",
		"dir", outDir,
		"files", len(result.Files),
		"operations", result.GeneratedOperations,
	)
	return nil
}

func runMCP(cctx *cli.Context) error {
	return mcpserver.Run(cctx.Context)
}
