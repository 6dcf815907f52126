package codegen

import (
	"path/filepath"
	"sort"
	"strings"
)

// ModuleSpecFrom derives the import specifier for a project-relative module
// path as seen from a project-relative directory.
func ModuleSpecFrom(fromDir, modulePath string) string {
	rel, err := filepath.Rel(fromDir, modulePath)
	if err != nil {
		rel = modulePath
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}

// Mapping wires one endpoint handler to a generated declaration.
type Mapping struct {
	// Endpoint is the controller class name (e.g. "UsersController").
	Endpoint string `json:"endpoint"`
	// Member is the handler method name.
	Member string `json:"member"`
	// Unit is the owning service class name.
	Unit string `json:"unit"`
	// Ref is the lookup expression (e.g. "UsersServiceResponses.findAll").
	Ref string `json:"ref"`
	// LookupObject is the aggregate export the Ref reads from.
	LookupObject string `json:"lookupObject"`
	// IsArray is true when the response body is an array.
	IsArray bool `json:"isArray"`
	// Status is the success status code (200, or 201 for POST handlers).
	Status int `json:"status"`
	// Verb is the handler's HTTP verb.
	Verb string `json:"verb"`
	// Description is the swagger description, when one was derived.
	Description string `json:"description,omitempty"`
	// Module is the project-relative path of the generated declaration
	// module, without extension (e.g. "src/users/users.service.responses").
	// Consumers relativize it against their own emit location.
	Module string `json:"module"`
}

// LookupTable aggregates all endpoint mappings of one generation run.
type LookupTable struct {
	Mappings []Mapping

	byHandler map[string]map[string]Mapping
}

// NewLookupTable returns an empty table.
func NewLookupTable() *LookupTable {
	return &LookupTable{byHandler: make(map[string]map[string]Mapping)}
}

// Add registers a mapping. The first mapping for a given endpoint/member
// pair wins; later duplicates are ignored.
func (t *LookupTable) Add(m Mapping) {
	members, ok := t.byHandler[m.Endpoint]
	if !ok {
		members = make(map[string]Mapping)
		t.byHandler[m.Endpoint] = members
	}
	if _, dup := members[m.Member]; dup {
		return
	}
	members[m.Member] = m
	t.Mappings = append(t.Mappings, m)
}

// Find returns the mapping for an endpoint handler, if one exists.
func (t *LookupTable) Find(endpoint, member string) (Mapping, bool) {
	members, ok := t.byHandler[endpoint]
	if !ok {
		return Mapping{}, false
	}
	m, ok := members[member]
	return m, ok
}

// EmitLookupModule renders the responses.map.ts module: one import per
// generated declaration module, the ResponseLookup table keyed by endpoint
// class and member, and a runtime InferResponse decorator that resolves
// through the table so un-rewritten sources still run. outDir is the
// project-relative directory the module is written into; imports are
// relativized against it.
func EmitLookupModule(table *LookupTable, markerName string, outDir string) string {
	e := NewEmitter()
	e.Line("// Generated by nest-responses. Do not edit.")

	// Deduplicated imports, sorted by module specifier for stable output.
	byModule := map[string]map[string]bool{}
	for _, m := range table.Mappings {
		if byModule[m.Module] == nil {
			byModule[m.Module] = map[string]bool{}
		}
		byModule[m.Module][m.LookupObject] = true
	}
	modules := make([]string, 0, len(byModule))
	for mod := range byModule {
		modules = append(modules, mod)
	}
	sort.Strings(modules)
	for _, mod := range modules {
		names := make([]string, 0, len(byModule[mod]))
		for n := range byModule[mod] {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			e.Line("import { %s } from '%s';", n, ModuleSpecFrom(outDir, mod))
		}
	}

	e.Blank()
	e.Block("export const ResponseLookup =")
	for _, endpoint := range table.endpointOrder() {
		e.Block("%s:", endpoint)
		for _, m := range table.memberOrder(endpoint) {
			mapping, _ := table.Find(endpoint, m)
			e.Block("%s:", m)
			e.Line("type: %s,", mapping.Ref)
			e.Line("isArray: %v,", mapping.IsArray)
			e.Line("status: %d,", mapping.Status)
			if mapping.Description != "" {
				e.Line("description: %s,", tsLiteral(mapping.Description))
			}
			e.EndBlockSuffix(",")
		}
		e.EndBlockSuffix(",")
	}
	e.Dedent()
	e.Line("} as const;")

	e.Blank()
	e.Line("type LookupEndpoints = keyof typeof ResponseLookup;")
	e.Blank()
	e.Block("export function %s(_options?: { status?: 'ok' | 'created'; isArray?: boolean; description?: string })", markerName)
	e.Block("return (target: object, propertyKey: string | symbol, descriptor?: PropertyDescriptor) =>")
	e.Line("const endpoint = target.constructor?.name as LookupEndpoints;")
	e.Line("const entry = (ResponseLookup as Record<string, Record<string, unknown>>)[endpoint]?.[String(propertyKey)];")
	e.Block("if (entry === undefined)")
	e.Line("console.warn(`%s: no generated response for ${String(endpoint)}.${String(propertyKey)}`);", markerName)
	e.EndBlock()
	e.Line("return descriptor;")
	e.EndBlockSuffix(";")
	e.EndBlock()

	return e.String()
}

// endpointOrder returns endpoint class names in first-seen mapping order.
func (t *LookupTable) endpointOrder() []string {
	var order []string
	seen := map[string]bool{}
	for _, m := range t.Mappings {
		if !seen[m.Endpoint] {
			seen[m.Endpoint] = true
			order = append(order, m.Endpoint)
		}
	}
	return order
}

// memberOrder returns an endpoint's member names in first-seen order.
func (t *LookupTable) memberOrder(endpoint string) []string {
	var order []string
	for _, m := range t.Mappings {
		if m.Endpoint == endpoint {
			order = append(order, m.Member)
		}
	}
	return order
}
