// Package parse wraps the typescript-go parser with the fixed options this
// tool always uses: plain TypeScript, full JSDoc parsing, no program and no
// type checker.
package parse

import (
	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/core"
	"github.com/microsoft/typescript-go/shim/parser"
	"github.com/microsoft/typescript-go/shim/tspath"
)

// File parses a single TypeScript source text in isolation. Parse errors do
// not fail the call: the parser always produces a tree, and downstream
// analysis degrades per node.
func File(fileName string, text string) *ast.SourceFile {
	opts := ast.SourceFileParseOptions{
		FileName:         tspath.ResolvePath("/", fileName),
		Path:             tspath.ToPath(fileName, "/", true),
		JSDocParsingMode: ast.JSDocParsingModeParseAll,
	}
	return parser.ParseSourceFile(opts, text, core.ScriptKindTS)
}
