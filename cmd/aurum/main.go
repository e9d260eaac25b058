// Package main is the entry point for the aurum editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tidwall/gjson"

	"github.com/dshills/aurum/internal/app"
	"github.com/dshills/aurum/internal/renderer/backend"
	"github.com/dshills/aurum/internal/syntax/loader"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliOptions struct {
	app.Options
	printRules  string
	showVersion bool
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "aurum %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}
	if opts.printRules != "" {
		return printRules(opts.printRules, stdout, stderr)
	}

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("aurum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.SyntaxDir, "syntax-dir", "", "Directory of syntax rule files")
	fs.BoolVar(&opts.NoWatch, "no-watch", false, "Disable live reload of config and rule files")
	fs.StringVar(&opts.printRules, "print-rules", "", "Print a rule file as JSON and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "aurum - a small terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: aurum [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys: ^S save, ^Q quit, ^F find, F1 help\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.LogLevel != "" && !app.ValidLogLevel(opts.LogLevel) {
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}
	if fs.NArg() > 1 {
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opts.Files = fs.Args()
	return opts, nil
}

// printRules loads a rule file in any supported format and prints it in
// the JSON schema.
func printRules(path string, stdout, stderr io.Writer) int {
	rs, err := loader.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	doc, err := loader.EncodeJSON(rs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: encode %s: %v\n", path, err)
		return 1
	}
	fmt.Fprint(stdout, gjson.GetBytes(doc, "@pretty").Raw)
	return 0
}
