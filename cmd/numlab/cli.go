// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/docopt/docopt-go"

	"github.com/katalvlaran/numlab/internal/config"
	"github.com/katalvlaran/numlab/internal/logging"
	"github.com/katalvlaran/numlab/matrixio"
)

const version = "numlab 0.1.0"

const usage = `numlab: numerical methods workbench.

Usage:
  numlab multiply [--variant=<v>] [--parallel] [--out=<file>] <a> <b>
  numlab add [--out=<file>] <a> <b>
  numlab sub [--out=<file>] <a> <b>
  numlab kron [--out=<file>] <a> <b>
  numlab lu <a>
  numlab integrate (trapezoid|simpson|romberg) [--n=<n>] [--] <expr> <lo> <hi>
  numlab root (bisection|newton|falsi|secant) [--] <expr> <x0> <x1>
  numlab sort (bubble|insertion|selection|merge) [--] <values>...
  numlab search (linear|binary|interpolation) [--] <target> <values>...
  numlab -h | --help
  numlab --version

Arguments:
  <a> <b>     Matrix files (.yaml, .yml, .json, .txt, .csv or .mat, optionally
              .gz, .zst or .lz4 compressed).
  <expr>      One of: cos, exp, poly3, recip, sin, sq2.

Options:
  -h --help      Show this screen.
  --version      Show version.
  --variant=<v>  Recursive variant, standard or strassen (NUMLAB_VARIANT).
  --parallel     Fork large sub-products onto helper goroutines (NUMLAB_PARALLEL).
  --out=<file>   Write the result to a matrix file instead of stdout.
  --n=<n>        Divisions for trapezoid and simpson [default: 100].

Negative numbers must follow "--".`

// errUsage marks a command line docopt rejected.
var errUsage = errors.New("invalid usage")

// env is everything a command needs.
type env struct {
	ctx    context.Context
	args   docopt.Opts
	cfg    config.Config
	logger *slog.Logger
	loader *matrixio.Loader
	stdout io.Writer
}

// command is one numlab sub-command.
type command func(e *env) error

var commands = map[string]command{
	"multiply":  runMultiply,
	"add":       runAdd,
	"sub":       runSub,
	"kron":      runKron,
	"lu":        runLU,
	"integrate": runIntegrate,
	"root":      runRoot,
	"sort":      runSort,
	"search":    runSearch,
}

// run parses argv, wires config and logging, and dispatches. It returns the exit status.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var help string
	parser := &docopt.Parser{
		HelpHandler: func(_ error, text string) { help = text },
	}
	args, err := parser.ParseArgs(usage, argv, version)
	switch {
	case err != nil:
		fmt.Fprintln(stderr, help)
		return 2
	case help != "":
		fmt.Fprintln(stdout, help)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger, err := logging.New(stderr, cfg.LogFormat, level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.EnvFile != "" {
		logger.Debug("env file applied", "path", cfg.EnvFile)
	}

	name, cmd := selectCommand(args)
	if cmd == nil {
		logger.Error("no command selected")
		return 2
	}
	e := &env{
		ctx:    ctx,
		args:   args,
		cfg:    cfg,
		logger: logger.With("command", name),
		loader: matrixio.NewLoader(cfg.CacheSize, logger),
		stdout: stdout,
	}
	if err = cmd(e); err != nil {
		e.logger.Error("command failed", "error", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}

	return 0
}

// selectCommand returns the sub-command docopt matched.
func selectCommand(args docopt.Opts) (string, command) {
	for name, cmd := range commands {
		if ok, _ := args.Bool(name); ok {
			return name, cmd
		}
	}
	return "", nil
}

// choice returns the first key in names that docopt set to true.
func choice(args docopt.Opts, names ...string) string {
	for _, n := range names {
		if ok, _ := args.Bool(n); ok {
			return n
		}
	}
	return ""
}

// stringList returns a repeated positional argument.
func stringList(args docopt.Opts, key string) []string {
	v, _ := args[key].([]string)
	return v
}
