package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sand97/nest-responses-generator/internal/diagnostic"
)

func runRewrite(args []string) int {
	flags := flag.NewFlagSet("rewrite", flag.ExitOnError)
	var g generateFlags
	g.register(flags)
	flags.Usage = func() {
		fmt.Println("Usage: nest-responses rewrite [flags]")
		fmt.Println()
		fmt.Println("Runs a full generation pass, then replaces marker decorators in")
		fmt.Println("controller sources with concrete swagger response decorators.")
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

	// Rewriting needs a current lookup table, so generation always runs
	// first within the same pass.
	start := time.Now()
	if _, err := pass.GenerateDeclarations(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	table, err := pass.GenerateEndpointWiring()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	changed := pass.RewriteEndpoints(table)

	return report(diags, fmt.Sprintf("rewrote %d controller file(s) in %s", changed, time.Since(start).Round(time.Millisecond)))
}
