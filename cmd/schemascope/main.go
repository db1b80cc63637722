// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program schemascope inspects JSON documents, either interactively or by
// printing a tree, a table of leaf paths, or the value at a path.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/schemascope/internal/apperr"
	"github.com/creachadair/schemascope/internal/config"
	"github.com/creachadair/schemascope/internal/logger"
)

var version = "0.1.0"

// Globals are the flags shared by all commands.
type Globals struct {
	Config   string           `help:"Configuration file (default: search for .schemascope.yml)." type:"path"`
	Relaxed  bool             `help:"Accept comments and trailing commas in the input."`
	MaxDepth int              `help:"Maximum nesting depth of the input (default 10000)."`
	Debug    bool             `help:"Write a debug log."`
	LogDir   string           `help:"Directory for the debug log." type:"path"`
	Version  kong.VersionFlag `help:"Print the version and exit."`
}

// CLI is the complete command line.
type CLI struct {
	Globals

	UI     uiCmd     `cmd:"" default:"withargs" help:"Browse a document interactively (default)."`
	Table  tableCmd  `cmd:"" help:"Print a table of the leaf values of a document."`
	Tree   treeCmd   `cmd:"" help:"Print a document as an indented tree."`
	Get    getCmd    `cmd:"" help:"Print the value at a flattened path."`
	Export exportCmd `cmd:"" help:"Write the document, indented, to schema.json."`
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// realMain runs the program with the given arguments and streams, and returns
// its exit status.
func realMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("schemascope"),
		kong.Description("Inspect the structure of JSON documents."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version},
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if exited {
		return 0
	} else if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	env, err := newEnv(&cli.Globals, stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, apperr.UserMessage(err))
		return 1
	}
	defer logger.Close()
	logger.Info("command started", "command", kctx.Command(), "version", version)

	if err := kctx.Run(env); err != nil {
		logger.Error("command failed", "command", kctx.Command(), "err", err)
		fmt.Fprintln(stderr, apperr.UserMessage(err))
		return 1
	}
	return 0
}

// newEnv loads the configuration, applies the global flags to it, and starts
// logging.
func newEnv(g *Globals, stdin io.Reader, stdout, stderr io.Writer) (*env, error) {
	path := g.Config
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Find(wd)
		}
	}
	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, apperr.Configf(err, "load %s", path)
		}
		cfg = loaded
	}

	var o config.Overrides
	if g.Relaxed {
		o.Relaxed = &g.Relaxed
	}
	if g.MaxDepth > 0 {
		o.MaxDepth = &g.MaxDepth
	}
	if g.Debug {
		o.Debug = &g.Debug
	}
	if g.LogDir != "" {
		o.LogDir = &g.LogDir
	}
	cfg = cfg.Merge(o)
	if err := cfg.Validate(); err != nil {
		return nil, apperr.Configf(err, "invalid settings")
	}
	if err := logger.Init(cfg.LoggerOptions()); err != nil {
		return nil, apperr.Configf(err, "start logging")
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return &env{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}, nil
}
