package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/sand97/nest-responses-generator/internal/codegen"
)

const swaggerModule = "@nestjs/swagger"

// importNeeds accumulates the names a rewritten file must import: swagger
// response decorators and the lookup objects of generated modules.
type importNeeds struct {
	swagger map[string]bool
	// modules maps project-relative module paths to needed export names.
	modules map[string]map[string]bool
	order   []string
}

func newImportNeeds() *importNeeds {
	return &importNeeds{
		swagger: map[string]bool{},
		modules: map[string]map[string]bool{},
	}
}

func (n *importNeeds) addSwagger(name string) {
	n.swagger[name] = true
}

func (n *importNeeds) addModule(modulePath, exportName string) {
	if n.modules[modulePath] == nil {
		n.modules[modulePath] = map[string]bool{}
		n.order = append(n.order, modulePath)
	}
	n.modules[modulePath][exportName] = true
}

// importEdits produces the splices that satisfy the accumulated needs:
// names are appended to existing import clauses when the module is already
// imported, otherwise a new import line is inserted after the last import.
// fileName must be project-relative so module specifiers resolve correctly.
func (n *importNeeds) importEdits(sf *ast.SourceFile, text string, fileName string) []edit {
	existing := collectImports(sf)

	var edits []edit
	var newLines []string

	if missing := missingNames(existing, swaggerModule, n.swagger); len(missing) > 0 {
		if imp, ok := existing[swaggerModule]; ok && imp.lastSpecifierEnd > 0 {
			edits = append(edits, edit{
				start:       imp.lastSpecifierEnd,
				end:         imp.lastSpecifierEnd,
				replacement: ", " + strings.Join(missing, ", "),
			})
		} else {
			newLines = append(newLines, fmt.Sprintf("import { %s } from '%s';", strings.Join(missing, ", "), swaggerModule))
		}
	}

	fromDir := "."
	if idx := strings.LastIndexByte(fileName, '/'); idx >= 0 {
		fromDir = fileName[:idx]
	}
	for _, modulePath := range n.order {
		spec := codegen.ModuleSpecFrom(fromDir, modulePath)
		missing := missingNames(existing, spec, n.modules[modulePath])
		if len(missing) == 0 {
			continue
		}
		if imp, ok := existing[spec]; ok && imp.lastSpecifierEnd > 0 {
			edits = append(edits, edit{
				start:       imp.lastSpecifierEnd,
				end:         imp.lastSpecifierEnd,
				replacement: ", " + strings.Join(missing, ", "),
			})
		} else {
			newLines = append(newLines, fmt.Sprintf("import { %s } from '%s';", strings.Join(missing, ", "), spec))
		}
	}

	if len(newLines) > 0 {
		insertAt, prefix := importInsertPoint(sf, text)
		edits = append(edits, edit{
			start:       insertAt,
			end:         insertAt,
			replacement: prefix + strings.Join(newLines, "\n") + "\n",
		})
	}

	return edits
}

type existingImport struct {
	names            map[string]bool
	lastSpecifierEnd int
	end              int
}

// collectImports indexes the file's top-level import declarations by module
// specifier.
func collectImports(sf *ast.SourceFile) map[string]existingImport {
	result := map[string]existingImport{}
	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind != ast.KindImportDeclaration {
			continue
		}
		decl := stmt.AsImportDeclaration()
		if decl.ModuleSpecifier == nil || decl.ModuleSpecifier.Kind != ast.KindStringLiteral {
			continue
		}
		spec := decl.ModuleSpecifier.AsStringLiteral().Text

		imp := existingImport{names: map[string]bool{}, end: stmt.End()}
		if decl.ImportClause != nil {
			clause := decl.ImportClause.AsImportClause()
			if clause.NamedBindings != nil && clause.NamedBindings.Kind == ast.KindNamedImports {
				named := clause.NamedBindings.AsNamedImports()
				if named.Elements != nil {
					for _, elem := range named.Elements.Nodes {
						imp.names[elem.AsImportSpecifier().Name().Text()] = true
						imp.lastSpecifierEnd = elem.End()
					}
				}
			}
		}
		result[spec] = imp
	}
	return result
}

// missingNames returns the needed names not yet imported from a module,
// sorted for stable output.
func missingNames(existing map[string]existingImport, module string, needed map[string]bool) []string {
	var missing []string
	imp := existing[module]
	for name := range needed {
		if imp.names == nil || !imp.names[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// importInsertPoint finds where new import lines go: after the last
// top-level import, or at the top of the file when there are none.
func importInsertPoint(sf *ast.SourceFile, text string) (int, string) {
	lastEnd := -1
	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind == ast.KindImportDeclaration {
			lastEnd = stmt.End()
		}
	}
	if lastEnd < 0 {
		return 0, ""
	}
	// Step past the import's line break so new lines start on their own line.
	pos := lastEnd
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	if pos < len(text) {
		pos++
	}
	return pos, ""
}
