package shape

// The analyzer resolves named return-type references against a fixed, closed
// registry of well-known domain types. This is a deliberate heuristic, not a
// type resolver: names outside the registry degrade to DefaultNamed(). There
// is intentionally no user-facing registration mechanism.

// wellKnown maps domain type names to their shapes. Covers the TypeORM
// result types and the common paginated-list envelope that NestJS services
// return from create/update/remove/list methods.
var wellKnown = map[string]Shape{
	"DeleteResult": Object(
		Field{Name: "affected", Type: Prim(Number)},
	),
	"UpdateResult": Object(
		Field{Name: "affected", Type: Prim(Number)},
	),
	"InsertResult": Object(
		Field{Name: "identifiers", Type: Array(Object(
			Field{Name: "id", Type: Prim(Number)},
		))},
	),
	"Pagination": paginatedList(),
	"Paginated":  paginatedList(),
}

func paginatedList() Shape {
	return Object(
		Field{Name: "items", Type: Array(DefaultNamed())},
		Field{Name: "total", Type: Prim(Number)},
		Field{Name: "page", Type: Prim(Number)},
		Field{Name: "limit", Type: Prim(Number)},
	)
}

// Lookup resolves a named type reference against the registry.
func Lookup(name string) (Shape, bool) {
	s, ok := wellKnown[name]
	return s, ok
}

// DefaultNamed is the best-effort shape for a named type reference that is
// not in the registry: an object with a single numeric id field. Callers
// must not assume field-accurate output for arbitrary named types.
func DefaultNamed() Shape {
	return Object(Field{Name: "id", Type: Prim(Number)})
}
