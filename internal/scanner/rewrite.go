package scanner

import (
	"fmt"

	"github.com/sand97/nest-responses-generator/internal/codegen"
	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/rewrite"
)

// RewriteEndpoints rewrites marker decorators in every discovered endpoint
// source against the given lookup table. Returns the number of files
// changed. Sources the rewriter leaves untouched are not written back.
func (p *Pass) RewriteEndpoints(table *codegen.LookupTable) int {
	changed := 0
	for _, source := range DiscoverSources(p.FS, p.Root, p.Config.Controllers) {
		text, ok := p.FS.ReadFile(source)
		if !ok {
			p.Diags.Warn(diagnostic.CategoryConfigurationFailure, source, 0, "controller source could not be read")
			continue
		}
		newText, dirty := rewrite.RewriteEndpointFile(text, relativeTo(p.Root, source), table, p.Config.Marker, p.Diags)
		if !dirty {
			continue
		}
		if err := p.FS.WriteFile(source, newText, false); err != nil {
			p.Diags.Error(diagnostic.CategoryEmissionFailure, source, 0,
				fmt.Sprintf("failed to write rewritten source: %v", err))
			continue
		}
		changed++
	}
	return changed
}
