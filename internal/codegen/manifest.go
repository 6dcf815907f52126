package codegen

import (
	"sort"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Manifest is the responses.manifest.json structure. It records what a
// generation run produced so editors and CI can diff runs without parsing
// the generated TypeScript.
type Manifest struct {
	// Version is the manifest schema version.
	Version int `json:"version"`
	// Units lists the generated declaration modules, sorted by unit name.
	Units []DeclarationModule `json:"units"`
	// Endpoints lists the controller wiring, sorted by endpoint then member.
	Endpoints []Mapping `json:"endpoints,omitempty"`
}

// ManifestVersion is bumped whenever the manifest schema changes shape.
const ManifestVersion = 1

// BuildManifest assembles a manifest from a run's declaration modules and
// endpoint table. Input order does not matter; the output is sorted so two
// runs over the same sources produce identical bytes.
func BuildManifest(units []*DeclarationModule, table *LookupTable) *Manifest {
	m := &Manifest{Version: ManifestVersion}

	for _, u := range units {
		if u != nil {
			m.Units = append(m.Units, *u)
		}
	}
	sort.Slice(m.Units, func(i, j int) bool {
		return m.Units[i].Unit < m.Units[j].Unit
	})

	if table != nil {
		m.Endpoints = append(m.Endpoints, table.Mappings...)
		sort.Slice(m.Endpoints, func(i, j int) bool {
			a, b := m.Endpoints[i], m.Endpoints[j]
			if a.Endpoint != b.Endpoint {
				return a.Endpoint < b.Endpoint
			}
			return a.Member < b.Member
		})
	}

	return m
}

// ManifestJSON serializes the manifest to indented, deterministic JSON with
// a trailing newline.
func ManifestJSON(m *Manifest) ([]byte, error) {
	out, err := json.Marshal(m, json.Deterministic(true), jsontext.WithIndent("  "))
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// ShapesJSON serializes any shape-bearing value for the --dump-shapes debug
// flag, using the same deterministic encoder as the manifest.
func ShapesJSON(v any) ([]byte, error) {
	out, err := json.Marshal(v, json.Deterministic(true), jsontext.WithIndent("  "))
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
