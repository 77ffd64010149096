package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dejo1307/objcskel/internal/config"
	"github.com/dejo1307/objcskel/internal/engine"
	"github.com/dejo1307/objcskel/internal/server"
)

const usage = "Usage: summarize <file-path> OR summarize --map <file-path>"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit status.
func run(args []string, stdout, stderr io.Writer) int {
	app := &cli.App{
		Name:      "summarize",
		Usage:     "Summarize the declaration structure of an Objective-C file",
		UsageText: "summarize [--map] [--properties] [--config FILE] <file-path>\nsummarize --serve",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "map",
				Usage: "Emit a JSON symbol map instead of the outline",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.BoolFlag{
				Name:  "properties",
				Usage: "Include @property declarations in the symbol map",
			},
			&cli.BoolFlag{
				Name:  "serve",
				Usage: "Run as an MCP server on stdio",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log pipeline progress to stderr",
			},
		},
		// Exit codes are reported by run, never by os.Exit inside the app.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			return summarize(c, stdout, stderr)
		},
	}

	err := app.Run(args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exitErr.ExitCode()
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func summarize(c *cli.Context, stdout, stderr io.Writer) error {
	// Log output goes to stderr, never stdout (MCP uses stdout for JSON-RPC).
	if c.Bool("verbose") || c.Bool("serve") {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := loadConfig(c, stderr)

	eng, err := engine.NewStandard(cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	if c.Bool("serve") {
		return serve(eng)
	}

	if c.NArg() < 1 {
		return cli.Exit(usage, 1)
	}
	path := c.Args().First()

	var out []byte
	if c.Bool("map") {
		out, err = eng.SymbolMap(c.Context, path)
	} else {
		out, err = eng.Outline(c.Context, path)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cli.Exit(fmt.Sprintf("Error: File not found: %s", path), 1)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	if _, err := stdout.Write(out); err != nil {
		return cli.Exit(fmt.Sprintf("Error: writing output: %v", err), 1)
	}
	return nil
}

// loadConfig reads the config file and applies flag overrides. A missing file
// means defaults; an invalid one is reported and also means defaults.
func loadConfig(c *cli.Context, stderr io.Writer) *config.Config {
	cfgPath := c.String("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "warning: %v, using defaults\n", err)
		}
		cfg = config.Default()
	}

	if c.Bool("properties") {
		cfg.Map.IncludeProperties = true
	}
	return cfg
}

func serve(eng *engine.Engine) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(eng)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to create server: %v", err), 1)
	}
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return cli.Exit(fmt.Sprintf("server error: %v", err), 1)
	}
	return nil
}
