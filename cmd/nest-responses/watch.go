package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/watcher"
)

func runWatch(args []string) int {
	flags := flag.NewFlagSet("watch", flag.ExitOnError)
	var g generateFlags
	g.register(flags)
	flags.Usage = func() {
		fmt.Println("Usage: nest-responses watch [flags]")
		fmt.Println()
		fmt.Println("Watches the project for TypeScript changes and regenerates the")
		fmt.Println("declaration modules, lookup module and manifest on each change.")
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

	regenerate := func(reason string) {
		diags := diagnostic.NewCollector(g.strict, g.quiet)
		pass := newPass(root, cfg, diags, g.force)
		start := time.Now()
		processed, err := pass.GenerateDeclarations()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		if _, err := pass.GenerateEndpointWiring(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		if out := diags.FormatAll(); out != "" {
			fmt.Fprint(os.Stderr, out)
		}
		fmt.Fprintf(os.Stderr, "[%s] %s: processed %d unit(s) in %s (%s)\n",
			time.Now().Format("15:04:05"), reason, processed,
			time.Since(start).Round(time.Millisecond), diags.Summary())
	}

	regenerate("initial")

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	w := watcher.New([]string{root}, []string{".ts"}, debounce, func(events []watcher.Event) {
		regenerate(changeSummary(events))
	})

	fmt.Fprintf(os.Stderr, "watching %s for changes (debounce %s)\n", root, debounce)
	if err := w.Watch(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// changeSummary condenses a debounced batch into one log token.
func changeSummary(events []watcher.Event) string {
	if len(events) == 1 {
		return fmt.Sprintf("%s %s", events[0].Op, events[0].Path)
	}
	return fmt.Sprintf("%d changes", len(events))
}
