// Package main is the entry point for the bindflow declaration tool.
//
// bindflow resolves key-binding declaration files into the exact
// sequence of installation calls they describe, for inspection or for
// validating a configuration before an editor picks it up.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bindflow/bindflow/internal/bind"
	"github.com/bindflow/bindflow/internal/config"
	"github.com/bindflow/bindflow/internal/keymap"
	"github.com/bindflow/bindflow/internal/luabind"
	lua "github.com/yuin/gopher-lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	declPath string
	luaPath  string
	watch    bool
	verbose  bool

	// dwim/strict override the declaration file's own settings, but
	// only when given on the command line.
	dwim      bool
	strict    bool
	dwimSet   bool
	strictSet bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	registry := keymap.NewRegistry()

	if opts.luaPath != "" {
		if err := runLua(opts.luaPath, opts, registry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if opts.declPath != "" {
		file, err := config.Load(opts.declPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := emitFile(file, opts, registry); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	printRegistry(registry)

	if opts.watch && opts.declPath != "" {
		return watchLoop(opts.declPath, opts)
	}
	return 0
}

// fileParser builds the stream parser for a declaration file, applying
// any command-line overrides on top of the file's own flags.
func fileParser(f *config.File, opts options) *bind.Parser {
	p := f.Parser()
	if opts.dwimSet {
		p.WithDWIM(opts.dwim)
	}
	if opts.strictSet {
		p.WithStrict(opts.strict)
	}
	return p
}

// luaParser builds the stream parser for Lua scripts. Scripts get dwim
// by default; command-line flags override.
func luaParser(opts options) *bind.Parser {
	p := bind.New().WithDWIM(true)
	if opts.dwimSet {
		p.WithDWIM(opts.dwim)
	}
	if opts.strictSet {
		p.WithStrict(opts.strict)
	}
	return p
}

// emitFile parses a declaration file and installs every group.
func emitFile(f *config.File, opts options, inst bind.Installer) error {
	toks, err := f.Tokens()
	if err != nil {
		return err
	}
	return fileParser(f, opts).Emit(inst, toks)
}

// watchLoop reprints the resolved bindings on every file change until
// interrupted.
func watchLoop(path string, opts options) int {
	w, err := config.WatchFile(path,
		func(f *config.File) {
			registry := keymap.NewRegistry()
			if err := emitFile(f, opts, registry); err != nil {
				slog.Warn("declarations rejected", "path", path, "err", err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			fmt.Println("--- reloaded ---")
			printRegistry(registry)
		},
		func(err error) {
			slog.Warn("watch error", "path", path, "err", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer w.Close()

	slog.Debug("watching", "path", path)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	return 0
}

// runLua executes a Lua declaration script with the bind module
// registered.
func runLua(path string, opts options, registry *keymap.Registry) error {
	L := lua.NewState()
	defer L.Close()

	mod := luabind.New(luaParser(opts), registry)
	if err := mod.Register(L); err != nil {
		return err
	}
	return L.DoFile(path)
}

// printRegistry writes the resolved groups per keymap.
func printRegistry(r *keymap.Registry) {
	for _, name := range r.Keymaps() {
		fmt.Printf("%s:\n", name)
		for _, e := range r.Entries(name) {
			for _, opt := range e.Options.Names() {
				if opt == bind.OptionKeymaps {
					continue
				}
				v, _ := e.Options.Get(opt)
				fmt.Printf("  [%s = %v]\n", opt, v)
			}
			for _, b := range e.Bindings {
				if b.Extended {
					fmt.Printf("  %v (extended)\n", b.Key)
					continue
				}
				fmt.Printf("  %v -> %v\n", b.Key, b.Definition)
			}
		}
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.declPath, "f", "", "Path to a declaration file (.yaml, .toml, .json)")
	flag.StringVar(&opts.luaPath, "lua", "", "Path to a Lua declaration script")
	flag.BoolVar(&opts.watch, "watch", false, "Watch the declaration file and reprint on change")
	flag.BoolVar(&opts.dwim, "dwim", false, "Infer positional arguments (overrides the file setting)")
	flag.BoolVar(&opts.strict, "strict", false, "Reject unmatched positional arguments (overrides the file setting)")
	flag.BoolVar(&opts.verbose, "v", false, "Enable verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bindflow - key-binding declaration resolver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: bindflow [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bindflow -f bindings.toml         Resolve and print groups\n")
		fmt.Fprintf(os.Stderr, "  bindflow -f bindings.yaml -watch  Reprint on every change\n")
		fmt.Fprintf(os.Stderr, "  bindflow -dwim -strict -f b.toml  Override the file's parser flags\n")
		fmt.Fprintf(os.Stderr, "  bindflow -lua init.lua            Run a Lua declaration script\n")
	}

	flag.Parse()

	// An override only applies when its flag was actually given, so a
	// file can still turn dwim on while the flag default stays off.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dwim":
			opts.dwimSet = true
		case "strict":
			opts.strictSet = true
		}
	})

	if showVersion {
		fmt.Printf("bindflow %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if opts.declPath == "" && opts.luaPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	return opts
}
