package scanner

import (
	"fmt"
	"strings"

	"github.com/sand97/nest-responses-generator/internal/analyzer"
	"github.com/sand97/nest-responses-generator/internal/codegen"
	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/naming"
	"github.com/sand97/nest-responses-generator/internal/parse"
)

// ManifestFileName is the manifest artifact written next to the lookup module.
const ManifestFileName = "responses.manifest.json"

// LookupModuleFileName is the generated endpoint lookup module.
const LookupModuleFileName = "responses.map.ts"

// BuildLookupTable pairs every discovered endpoint class with its owning
// unit's generated module and derives one mapping per HTTP handler. Pairing
// is by naming convention; a controller that cannot be paired is reported
// as a configuration failure and skipped, never fatal.
func (p *Pass) BuildLookupTable() *codegen.LookupTable {
	table := codegen.NewLookupTable()

	for _, source := range DiscoverSources(p.FS, p.Root, p.Config.Controllers) {
		p.wireController(source, table)
	}
	return table
}

// wireController adds the mappings of one controller source to the table.
func (p *Pass) wireController(source string, table *codegen.LookupTable) {
	text, ok := p.FS.ReadFile(source)
	if !ok {
		p.Diags.Warn(diagnostic.CategoryConfigurationFailure, source, 0, "controller source could not be read")
		return
	}
	sf := parse.File(source, text)

	classNode := FindClassWithSuffix(sf, naming.ControllerSuffix)
	if classNode == nil {
		return
	}
	endpoint := classNode.AsClassDeclaration().Name().Text()

	unit, ok := naming.OwningUnit(endpoint)
	if !ok {
		p.Diags.Warn(diagnostic.CategoryConfigurationFailure, source, lineOf(sf, classNode),
			fmt.Sprintf("class %q does not follow the controller naming convention", endpoint))
		return
	}

	mod, ok := p.UnitModule(unit)
	if !ok {
		p.Diags.WarnWithHint(diagnostic.CategoryConfigurationFailure, source, lineOf(sf, classNode),
			fmt.Sprintf("no generated responses for unit %q paired with %q", unit, endpoint),
			"check that the service file matches services.include and declares the expected class")
		return
	}

	modulePath := modulePathOf(mod)

	for _, method := range CollectMethods(classNode) {
		verb := analyzer.MethodHTTPVerb(method)
		if verb == "" {
			continue
		}
		member := method.Name().Text()

		gm, found := generatedMember(mod, member)
		if !found {
			p.Diags.Warn(diagnostic.CategoryConfigurationFailure, source, lineOf(sf, method),
				fmt.Sprintf("unit %q has no member %q for handler %s.%s", unit, member, endpoint, member))
			continue
		}

		description := gm.Summary
		if description == "" {
			description = analyzer.MethodSummary(method)
		}

		table.Add(codegen.Mapping{
			Endpoint:     endpoint,
			Member:       member,
			Unit:         unit,
			Ref:          mod.LookupObject + "." + member,
			LookupObject: mod.LookupObject,
			IsArray:      handlerIsArray(member, gm.IsArray),
			Status:       statusForVerb(verb),
			Verb:         verb,
			Description:  description,
			Module:       modulePath,
		})
	}
}

// GenerateEndpointWiring builds the lookup table and writes the lookup
// module and manifest into the configured output directory. Returns the
// table so the rewriter can reuse it within the same run.
func (p *Pass) GenerateEndpointWiring() (*codegen.LookupTable, error) {
	table := p.BuildLookupTable()
	outDir := p.Root + "/" + p.Config.Output.Dir

	if len(table.Mappings) > 0 {
		mapPath := outDir + "/" + LookupModuleFileName
		if err := p.FS.WriteFile(mapPath, codegen.EmitLookupModule(table, p.Config.Marker, p.Config.Output.Dir), false); err != nil {
			p.Diags.Error(diagnostic.CategoryEmissionFailure, mapPath, 0,
				fmt.Sprintf("failed to write lookup module: %v", err))
		}
	}

	if p.Config.WriteManifest() {
		manifest := codegen.BuildManifest(p.Modules(), table)
		data, err := codegen.ManifestJSON(manifest)
		if err != nil {
			return table, fmt.Errorf("encoding manifest: %w", err)
		}
		manifestPath := outDir + "/" + ManifestFileName
		if err := p.FS.WriteFile(manifestPath, string(data), false); err != nil {
			p.Diags.Error(diagnostic.CategoryEmissionFailure, manifestPath, 0,
				fmt.Sprintf("failed to write manifest: %v", err))
		}
	}

	return table, nil
}

// modulePathOf derives the project-relative path (without extension) of a
// unit's generated declaration module.
func modulePathOf(mod *codegen.DeclarationModule) string {
	if dir := dirOf(mod.SourceFile); dir != "." {
		return dir + "/" + mod.FileBase
	}
	return mod.FileBase
}

func generatedMember(mod *codegen.DeclarationModule, member string) (codegen.GeneratedMember, bool) {
	for _, gm := range mod.Members {
		if gm.Member == member {
			return gm, true
		}
	}
	return codegen.GeneratedMember{}, false
}

// handlerIsArray classifies a handler's array-ness. A name signalling a
// paginated envelope forces non-array and takes precedence over both the
// shape analysis and the findAll/getAll/listAll prefix heuristic.
func handlerIsArray(member string, shapeIsArray bool) bool {
	lower := strings.ToLower(member)
	if strings.Contains(lower, "paginated") || strings.Contains(lower, "paged") {
		return false
	}
	return shapeIsArray ||
		strings.HasPrefix(member, "findAll") ||
		strings.HasPrefix(member, "getAll") ||
		strings.HasPrefix(member, "listAll")
}

func statusForVerb(verb string) int {
	if verb == "POST" {
		return 201
	}
	return 200
}
