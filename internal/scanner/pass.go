// Package scanner discovers unit and endpoint sources, drives shape
// inference over them, and writes the generated declaration modules, the
// endpoint lookup module and the manifest.
package scanner

import (
	"github.com/microsoft/typescript-go/shim/vfs"

	"github.com/sand97/nest-responses-generator/internal/codegen"
	"github.com/sand97/nest-responses-generator/internal/config"
	"github.com/sand97/nest-responses-generator/internal/diagnostic"
)

// Pass carries the state of one generation run. A Pass is single-use: make
// a fresh one per run (watch mode makes one per trigger).
type Pass struct {
	// FS is the filesystem everything is read from and written to.
	FS vfs.FS
	// Root is the project root directory all config globs are relative to.
	Root string
	// Config is the loaded (or default) configuration.
	Config *config.Config
	// Diags collects warnings and errors; generation never hard-fails on a
	// single unit.
	Diags *diagnostic.Collector
	// Force disables the staleness gate and always regenerates.
	Force bool

	// units maps owning-unit class names to their generated modules, filled
	// by GenerateDeclarations and consumed by the endpoint wiring.
	units map[string]*codegen.DeclarationModule
	// unitFiles maps unit source paths to unit class names.
	unitFiles map[string]string
}

// NewPass creates a run over the given filesystem and project root.
func NewPass(fs vfs.FS, root string, cfg *config.Config, diags *diagnostic.Collector) *Pass {
	return &Pass{
		FS:        fs,
		Root:      root,
		Config:    cfg,
		Diags:     diags,
		units:     make(map[string]*codegen.DeclarationModule),
		unitFiles: make(map[string]string),
	}
}

// UnitModule returns the generated module for a unit class name, if the
// declaration pass produced one.
func (p *Pass) UnitModule(unit string) (*codegen.DeclarationModule, bool) {
	m, ok := p.units[unit]
	return m, ok
}

// Modules returns all generated declaration modules of this run.
func (p *Pass) Modules() []*codegen.DeclarationModule {
	out := make([]*codegen.DeclarationModule, 0, len(p.units))
	for _, m := range p.units {
		out = append(out, m)
	}
	return out
}
