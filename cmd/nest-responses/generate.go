package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"

	"github.com/sand97/nest-responses-generator/internal/codegen"
	"github.com/sand97/nest-responses-generator/internal/config"
	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/scanner"
)

// generateFlags holds the flag values shared by generate, rewrite and watch.
type generateFlags struct {
	configPath string
	root       string
	force      bool
	strict     bool
	quiet      bool
	dumpShapes bool
}

func (g *generateFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.configPath, "config", "", "Path to nest-responses config file (nest-responses.config.json)")
	fs.StringVar(&g.root, "root", "", "Project root directory (default: current directory)")
	fs.BoolVar(&g.force, "force", false, "Regenerate even when outputs are up to date")
	fs.BoolVar(&g.strict, "strict", false, "Treat warnings as errors")
	fs.BoolVar(&g.quiet, "quiet", false, "Suppress warnings")
	fs.BoolVar(&g.dumpShapes, "dump-shapes", false, "Dump inferred shapes as JSON to stdout (debug)")
}

// resolve fills defaults and loads the config. The config file is taken
// from --config, discovered in the root, or defaulted.
func (g *generateFlags) resolve() (string, *config.Config, error) {
	root := g.root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", nil, fmt.Errorf("could not get working directory: %w", err)
		}
		root = cwd
	}
	if !filepath.IsAbs(root) {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", nil, err
		}
		root = abs
	}

	configPath := g.configPath
	if configPath == "" {
		configPath = config.Discover(root)
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(root, configPath)
	}

	if configPath == "" {
		cfg := config.DefaultConfig()
		return root, &cfg, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return "", nil, err
	}
	fmt.Fprintf(os.Stderr, "loaded config from %s\n", filepath.Base(configPath))
	return root, cfg, nil
}

func runGenerate(args []string) int {
	flags := flag.NewFlagSet("generate", flag.ExitOnError)
	var g generateFlags
	g.register(flags)
	flags.Usage = func() {
		fmt.Println("Usage: nest-responses generate [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		flags.PrintDefaults()
	}
	flags.Parse(args)

	root, cfg, err := g.resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	diags := diagnostic.NewCollector(g.strict, g.quiet)
	pass := newPass(root, cfg, diags, g.force)

	start := time.Now()
	processed, err := pass.GenerateDeclarations()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if _, err := pass.GenerateEndpointWiring(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if g.dumpShapes {
		if err := dumpShapes(pass); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	}

	return report(diags, fmt.Sprintf("processed %d unit(s) in %s", processed, time.Since(start).Round(time.Millisecond)))
}

// newPass wires a scanner pass over the OS filesystem. Reads go through a
// per-run cache; a Pass never re-reads a file it has written.
func newPass(root string, cfg *config.Config, diags *diagnostic.Collector, force bool) *scanner.Pass {
	var fsys vfs.FS = cachedvfs.From(osvfs.FS())
	pass := scanner.NewPass(fsys, root, cfg, diags)
	pass.Force = force
	return pass
}

// dumpShapes prints the run's generated modules and their members to
// stdout, for debugging inference.
func dumpShapes(pass *scanner.Pass) error {
	data, err := codegen.ShapesJSON(pass.Modules())
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// report prints diagnostics and a summary line, returning the process exit
// code.
func report(diags *diagnostic.Collector, summary string) int {
	if out := diags.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	fmt.Fprintf(os.Stderr, "%s (%s)\n", summary, diags.Summary())
	if diags.HasErrors() {
		return 1
	}
	return 0
}
