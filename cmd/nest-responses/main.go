package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.0.1-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		// No subcommand defaults to generate
		return runGenerate(os.Args[1:])
	}

	switch os.Args[1] {
	case "generate":
		return runGenerate(os.Args[2:])
	case "rewrite":
		return runRewrite(os.Args[2:])
	case "watch":
		return runWatch(os.Args[2:])
	case "--version", "-v":
		fmt.Println("nest-responses", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// Check if first arg starts with - (it's a flag, not a subcommand)
		if strings.HasPrefix(os.Args[1], "-") {
			return runGenerate(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("nest-responses - response declaration generator for NestJS services")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  nest-responses [flags]             Generate declarations (default)")
	fmt.Println("  nest-responses generate [flags]    Generate declaration modules, lookup module and manifest")
	fmt.Println("  nest-responses rewrite [flags]     Generate, then rewrite marker decorators in controllers")
	fmt.Println("  nest-responses watch [flags]       Watch sources and regenerate on change")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Generate Flags:")
	fmt.Println("  --config <path>        Path to nest-responses.config.json")
	fmt.Println("  --root <dir>           Project root (default: current directory)")
	fmt.Println("  --force                Regenerate even when outputs are up to date")
	fmt.Println("  --strict               Treat warnings as errors")
	fmt.Println("  --quiet                Suppress warnings")
	fmt.Println("  --dump-shapes          Dump inferred shapes as JSON to stdout (debug)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  nest-responses")
	fmt.Println("  nest-responses generate --force")
	fmt.Println("  nest-responses rewrite --config nest-responses.config.json")
	fmt.Println("  nest-responses watch")
	fmt.Println()
}
