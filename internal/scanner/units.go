package scanner

import (
	"fmt"

	"github.com/sand97/nest-responses-generator/internal/analyzer"
	"github.com/sand97/nest-responses-generator/internal/codegen"
	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/naming"
	"github.com/sand97/nest-responses-generator/internal/parse"
	"github.com/sand97/nest-responses-generator/internal/shape"
)

// GenerateDeclarations scans all unit sources, infers member shapes and
// writes one declaration module per unit with analyzable members. One bad
// unit never aborts the run: it is reported and skipped. Returns the number
// of units processed successfully; a unit whose output is already fresh
// counts, a unit whose write failed does not.
func (p *Pass) GenerateDeclarations() (int, error) {
	sources := DiscoverSources(p.FS, p.Root, p.Config.Services)

	processed := 0
	for _, source := range sources {
		mod := p.generateUnit(source)
		if mod == nil {
			continue
		}
		p.units[mod.Unit] = mod
		p.unitFiles[source] = mod.Unit

		outPath := dirOf(source) + "/" + mod.FileBase + ".ts"
		if !p.Force && !p.outputStale(source, outPath) {
			processed++
			continue
		}
		if err := p.FS.WriteFile(outPath, mod.Source, false); err != nil {
			p.Diags.Error(diagnostic.CategoryEmissionFailure, source, 0,
				fmt.Sprintf("failed to write %s: %v", outPath, err))
			continue
		}
		processed++
	}
	return processed, nil
}

// generateUnit analyzes one unit source and renders its declaration module.
// Returns nil when the file holds no unit class or no analyzable members.
func (p *Pass) generateUnit(source string) (mod *codegen.DeclarationModule) {
	defer func() {
		if r := recover(); r != nil {
			p.Diags.Warn(diagnostic.CategoryUnitFailure, source, 0,
				fmt.Sprintf("unit skipped after internal analysis panic: %v", r))
			mod = nil
		}
	}()

	text, ok := p.FS.ReadFile(source)
	if !ok {
		p.Diags.Warn(diagnostic.CategoryUnitFailure, source, 0, "unit source could not be read")
		return nil
	}

	sf := parse.File(source, text)
	classNode := FindClassWithSuffix(sf, naming.ServiceSuffix)
	if classNode == nil {
		return nil
	}
	unit := classNode.AsClassDeclaration().Name().Text()

	var members []codegen.Member
	for _, method := range CollectMethods(classNode) {
		name := method.Name().Text()
		s := analyzer.AnalyzeMethod(method)
		if s.Kind == shape.KindUnknown {
			p.Diags.Warn(diagnostic.CategoryAnalysisFailure, source, lineOf(sf, method),
				fmt.Sprintf("could not infer return shape of %s.%s; emitting an empty declaration", unit, name))
		}
		members = append(members, codegen.Member{
			Name:    name,
			Shape:   s,
			Summary: analyzer.MethodSummary(method),
			Line:    lineOf(sf, method),
		})
	}

	rel := relativeTo(p.Root, source)
	return codegen.GenerateDeclarations(unit, rel, members, p.Diags)
}
