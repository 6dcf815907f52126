package shape

import "strings"

// Example values are pattern-matched from field names so that generated
// declarations carry plausible swagger examples without any configuration.

// IsIDLike reports whether a field name denotes a numeric identifier:
// "id" itself, or a camelCase/snake_case "...Id"/"..._id" suffix.
func IsIDLike(name string) bool {
	if name == "id" {
		return true
	}
	return strings.HasSuffix(name, "Id") || strings.HasSuffix(name, "_id")
}

// ExampleFor infers an example value for a field from its name and primitive
// kind. Boolean fields always exemplify true; numbers default to 1 for
// id-like names and 0 otherwise; strings are matched against a small table
// of common field-name patterns.
func ExampleFor(name string, p Primitive) any {
	switch p {
	case Boolean:
		return true
	case Number:
		if IsIDLike(name) {
			return 1
		}
		return 0
	}

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "email") || strings.Contains(lower, "mail"):
		return "john@example.com"
	case strings.Contains(lower, "password") || strings.Contains(lower, "secret") || strings.Contains(lower, "token"):
		return "secret123"
	case strings.Contains(lower, "role"):
		return "admin"
	case strings.Contains(lower, "name"):
		return "John Doe"
	default:
		return "value"
	}
}

// ShorthandShape infers the shape of an object-literal shorthand property
// from its name alone: a property literally named "id" is a number, every
// other shorthand is a string.
func ShorthandShape(name string) Shape {
	if name == "id" {
		return Prim(Number)
	}
	return Prim(String)
}

// MemberAccessShape infers the shape of a member-access return expression
// (e.g. `return dto.firstname;`) from the accessed field name: id-like
// names are numbers, everything else is a string.
func MemberAccessShape(name string) Shape {
	if IsIDLike(name) {
		return Prim(Number)
	}
	return Prim(String)
}
