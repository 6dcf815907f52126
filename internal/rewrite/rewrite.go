// Package rewrite replaces marker decorators in endpoint sources with
// concrete swagger response decorators. Edits are derived from AST node
// positions and applied as text splices, so untouched source (formatting,
// comments, other decorators) survives byte-for-byte.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"

	"github.com/sand97/nest-responses-generator/internal/analyzer"
	"github.com/sand97/nest-responses-generator/internal/codegen"
	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/naming"
	"github.com/sand97/nest-responses-generator/internal/parse"
)

// edit is one text splice: replace text[start:end) with replacement.
// Inserts use start == end.
type edit struct {
	start       int
	end         int
	replacement string
}

// RewriteEndpointFile rewrites all marker decorators in one controller
// source. Returns the new text and whether anything changed. A handler
// whose mapping is missing keeps its marker untouched and is reported; the
// rewrite is idempotent because a rewritten file carries no markers.
func RewriteEndpointFile(text string, fileName string, table *codegen.LookupTable, markerName string, diags *diagnostic.Collector) (string, bool) {
	sf := parse.File(fileName, text)

	var edits []edit
	needs := newImportNeeds()

	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind != ast.KindClassDeclaration {
			continue
		}
		decl := stmt.AsClassDeclaration()
		if decl.Name() == nil || !strings.HasSuffix(decl.Name().Text(), naming.ControllerSuffix) {
			continue
		}
		edits = append(edits, rewriteClass(sf, text, stmt, table, markerName, needs, diags)...)
	}

	if len(edits) == 0 {
		return text, false
	}

	edits = append(edits, needs.importEdits(sf, text, fileName)...)
	return applyEdits(text, edits), true
}

// rewriteClass collects the edits for one controller class: member markers
// are replaced in place, and a class-level marker is removed and expanded
// into one decorator per handler.
func rewriteClass(sf *ast.SourceFile, text string, classNode *ast.Node, table *codegen.LookupTable, markerName string, needs *importNeeds, diags *diagnostic.Collector) []edit {
	endpoint := classNode.AsClassDeclaration().Name().Text()
	classMarker := analyzer.FindDecorator(classNode, markerName)

	var edits []edit
	classMarkerUsed := false

	decl := classNode.AsClassDeclaration()
	if decl.Members == nil {
		return nil
	}
	for _, member := range decl.Members.Nodes {
		if member.Kind != ast.KindMethodDeclaration || member.Name() == nil {
			continue
		}
		verb := analyzer.MethodHTTPVerb(member)
		if verb == "" {
			continue
		}
		memberMarker := analyzer.FindDecorator(member, markerName)
		marker := memberMarker
		if marker == nil {
			marker = classMarker
		}
		if marker == nil {
			continue
		}

		memberName := member.Name().Text()
		mapping, ok := table.Find(endpoint, memberName)
		if !ok {
			line, _ := shimscanner.GetECMALineAndCharacterOfPosition(sf, tokenStart(text, member))
			diags.WarnWithHint(diagnostic.CategoryConfigurationFailure, fileName(sf), line+1,
				fmt.Sprintf("no generated response for %s.%s; marker left in place", endpoint, memberName),
				"run generate and check the paired service declares this member")
			continue
		}

		decoratorText, swaggerName := responseDecorator(mapping, markerOptions(marker))
		needs.addSwagger(swaggerName)
		needs.addModule(mapping.Module, mapping.LookupObject)

		if memberMarker != nil {
			start := tokenStart(text, memberMarker.Node)
			edits = append(edits, edit{start: start, end: memberMarker.Node.End(), replacement: decoratorText})
		} else {
			classMarkerUsed = true
			insertAt, indent := lineStartAndIndent(text, tokenStart(text, member))
			edits = append(edits, edit{start: insertAt, end: insertAt, replacement: indent + decoratorText + "\n"})
		}
	}

	if classMarker != nil && classMarkerUsed {
		start := tokenStart(text, classMarker.Node)
		end := consumeTrailingBlank(text, classMarker.Node.End())
		edits = append(edits, edit{start: start, end: end})
	}

	return edits
}

// markerOpts holds the explicit overrides parsed from a marker call's
// options object. Nil pointers mean "not specified, use the inferred value".
type markerOpts struct {
	status      *int
	isArray     *bool
	description *string
}

// markerOptions extracts overrides from @Marker({ status, isArray,
// description }). Unparseable option values are ignored rather than failing
// the rewrite.
func markerOptions(marker *analyzer.DecoratorInfo) markerOpts {
	var opts markerOpts
	if marker == nil || marker.ObjectArg == nil {
		return opts
	}
	if node, ok := marker.ObjectArg["status"]; ok && node != nil {
		switch node.Kind {
		case ast.KindStringLiteral:
			switch node.AsStringLiteral().Text {
			case "created":
				opts.status = intPtr(201)
			case "ok":
				opts.status = intPtr(200)
			}
		case ast.KindNumericLiteral:
			if node.Text() == "201" {
				opts.status = intPtr(201)
			} else if node.Text() == "200" {
				opts.status = intPtr(200)
			}
		}
	}
	if node, ok := marker.ObjectArg["isArray"]; ok && node != nil {
		switch node.Kind {
		case ast.KindTrueKeyword:
			opts.isArray = boolPtr(true)
		case ast.KindFalseKeyword:
			opts.isArray = boolPtr(false)
		}
	}
	if node, ok := marker.ObjectArg["description"]; ok && node != nil && node.Kind == ast.KindStringLiteral {
		s := node.AsStringLiteral().Text
		opts.description = &s
	}
	return opts
}

// responseDecorator renders the concrete swagger decorator for a mapping,
// with marker options taking precedence over inferred values. Also returns
// the decorator name so the caller can ensure its import.
func responseDecorator(mapping codegen.Mapping, opts markerOpts) (string, string) {
	status := mapping.Status
	if opts.status != nil {
		status = *opts.status
	}
	isArray := mapping.IsArray
	if opts.isArray != nil {
		isArray = *opts.isArray
	}
	description := mapping.Description
	if opts.description != nil {
		description = *opts.description
	}

	name := "ApiOkResponse"
	if status == 201 {
		name = "ApiCreatedResponse"
	}

	args := []string{fmt.Sprintf("type: %s", mapping.Ref)}
	if isArray {
		args = append(args, "isArray: true")
	}
	if description != "" {
		args = append(args, fmt.Sprintf("description: '%s'", strings.ReplaceAll(description, "'", "\\'")))
	}
	return fmt.Sprintf("@%s({ %s })", name, strings.Join(args, ", ")), name
}

// tokenStart returns the first non-trivia position of a node. Node.Pos()
// includes leading trivia and would splice away preceding comments.
func tokenStart(text string, node *ast.Node) int {
	return shimscanner.SkipTrivia(text, node.Pos())
}

// lineStartAndIndent finds the start of the line containing pos and the
// leading whitespace of that line.
func lineStartAndIndent(text string, pos int) (int, string) {
	lineStart := pos
	for lineStart > 0 && text[lineStart-1] != '\n' {
		lineStart--
	}
	indentEnd := lineStart
	for indentEnd < len(text) && (text[indentEnd] == ' ' || text[indentEnd] == '\t') {
		indentEnd++
	}
	return lineStart, text[lineStart:indentEnd]
}

// consumeTrailingBlank extends a removal range over trailing spaces and at
// most one newline, so deleting a whole-line decorator leaves no blank line.
func consumeTrailingBlank(text string, end int) int {
	for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
		end++
	}
	if end < len(text) && text[end] == '\r' {
		end++
	}
	if end < len(text) && text[end] == '\n' {
		end++
	}
	return end
}

// applyEdits splices all edits into the text, applied back-to-front so
// earlier positions stay valid.
func applyEdits(text string, edits []edit) string {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].start != edits[j].start {
			return edits[i].start > edits[j].start
		}
		return edits[i].end > edits[j].end
	})
	for _, e := range edits {
		text = text[:e.start] + e.replacement + text[e.end:]
	}
	return text
}

func fileName(sf *ast.SourceFile) string {
	return sf.FileName()
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
