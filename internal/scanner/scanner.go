package scanner

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"

	"github.com/sand97/nest-responses-generator/internal/analyzer"
	"github.com/sand97/nest-responses-generator/internal/config"
)

// DiscoverSources walks the project root and returns the .ts files matching
// the scan config, sorted for deterministic processing order. Declaration
// files and node_modules are never considered.
func DiscoverSources(fsys vfs.FS, root string, scan config.ScanConfig) []string {
	var sources []string
	_ = fsys.WalkDir(root, func(path string, d vfs.DirEntry, err error) error {
		if err != nil || d == nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == "node_modules" || d.Name() == ".git" {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".d.ts") {
			return nil
		}
		rel := relativeTo(root, path)
		if analyzer.MatchesGlob(rel, scan.Include, scan.Exclude) {
			sources = append(sources, path)
		}
		return nil
	})
	sort.Strings(sources)
	return sources
}

// FindClassWithSuffix returns the first top-level class declaration whose
// name carries the given suffix, or nil. Classes without names are skipped.
func FindClassWithSuffix(sf *ast.SourceFile, suffix string) *ast.Node {
	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind != ast.KindClassDeclaration {
			continue
		}
		decl := stmt.AsClassDeclaration()
		if decl.Name() == nil {
			continue
		}
		if strings.HasSuffix(decl.Name().Text(), suffix) {
			return stmt
		}
	}
	return nil
}

// CollectMethods returns a class's analyzable method declarations in source
// order: constructors, accessors, private, protected and static members are
// excluded, as are #-private names.
func CollectMethods(classNode *ast.Node) []*ast.Node {
	decl := classNode.AsClassDeclaration()
	if decl.Members == nil {
		return nil
	}
	var methods []*ast.Node
	for _, member := range decl.Members.Nodes {
		if member.Kind != ast.KindMethodDeclaration {
			continue
		}
		if member.Name() == nil || member.Name().Kind == ast.KindPrivateIdentifier {
			continue
		}
		if hasNonPublicModifier(member) {
			continue
		}
		methods = append(methods, member)
	}
	return methods
}

func hasNonPublicModifier(node *ast.Node) bool {
	mods := node.Modifiers()
	if mods == nil {
		return false
	}
	for _, mod := range mods.Nodes {
		switch mod.Kind {
		case ast.KindPrivateKeyword, ast.KindProtectedKeyword, ast.KindStaticKeyword:
			return true
		}
	}
	return false
}

// lineOf returns the 1-based line of a node's token start, for diagnostics.
func lineOf(sf *ast.SourceFile, node *ast.Node) int {
	pos := shimscanner.SkipTrivia(sf.Text(), node.Pos())
	line, _ := shimscanner.GetECMALineAndCharacterOfPosition(sf, pos)
	return line + 1
}

// relativeTo strips the root prefix from an absolute path, keeping forward
// slashes, so config globs match project-relative paths.
func relativeTo(root, path string) string {
	normalizedRoot := tspath.NormalizePath(root)
	normalizedPath := tspath.NormalizePath(path)
	if rest, ok := strings.CutPrefix(normalizedPath, normalizedRoot+"/"); ok {
		return rest
	}
	return normalizedPath
}

// dirOf returns the directory portion of a normalized path.
func dirOf(path string) string {
	normalized := tspath.NormalizePath(path)
	if idx := strings.LastIndexByte(normalized, '/'); idx >= 0 {
		return normalized[:idx]
	}
	return "."
}
