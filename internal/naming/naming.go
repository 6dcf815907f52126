// Package naming derives the deterministic names used for generated
// declarations, lookup objects and output files. Every name is a pure
// function of (owning-unit name, member name, nesting path), so reordering
// source members never changes any individual derived name.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DeclarationSuffix is appended to every top-level member declaration.
	DeclarationSuffix = "Response"
	// ItemSuffix marks the synthetic element declaration of an array.
	ItemSuffix = "Item"
	// LookupSuffix names the per-unit aggregate lookup object.
	LookupSuffix = "Responses"
	// LookupMapSuffix names the structural type alias of the lookup object.
	LookupMapSuffix = "ResponseMap"

	// ServiceSuffix and ControllerSuffix are the class-name conventions that
	// pair an endpoint unit with its owning unit.
	ServiceSuffix    = "Service"
	ControllerSuffix = "Controller"
)

// titler capitalizes the first letter of each word without lowercasing the
// rest, so camelCase member names keep their interior capitals.
var titler = cases.Title(language.Und, cases.NoLower)

// Capitalize upper-cases the first letter of an identifier: "findAll" →
// "FindAll". Already-capitalized input is returned unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return titler.String(s[:1]) + s[1:]
}

// Declaration derives the generated declaration name for a unit member:
// ("UsersService", "findAll") → "UsersServiceFindAllResponse".
func Declaration(unit, member string) string {
	return unit + Capitalize(member) + DeclarationSuffix
}

// Child derives the synthetic declaration name of a nested object field:
// ("UsersServiceCreateResponse", "profile") → "UsersServiceCreateResponseProfile".
func Child(parent, field string) string {
	return parent + Capitalize(field)
}

// Item derives the synthetic element declaration name of an array:
// "UsersServiceFindAllResponse" → "UsersServiceFindAllResponseItem".
func Item(name string) string {
	return name + ItemSuffix
}

// LookupObject names the aggregate member→declaration lookup of a unit:
// "UsersService" → "UsersServiceResponses".
func LookupObject(unit string) string {
	return unit + LookupSuffix
}

// LookupMapAlias names the structural type of a unit's lookup object:
// "UsersService" → "UsersServiceResponseMap".
func LookupMapAlias(unit string) string {
	return unit + LookupMapSuffix
}

// OwningUnit derives the owning-unit class name paired with an endpoint
// class by suffix substitution: "UsersController" → "UsersService".
// The second return is false when the endpoint name does not carry the
// controller suffix, which callers treat as a configuration failure.
func OwningUnit(endpoint string) (string, bool) {
	base, ok := strings.CutSuffix(endpoint, ControllerSuffix)
	if !ok || base == "" {
		return "", false
	}
	return base + ServiceSuffix, true
}

// ResponsesFileBase derives the generated module base name from a unit
// source file name: "users.service.ts" → "users.service.responses".
func ResponsesFileBase(sourceFile string) string {
	base := sourceFile
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	for _, ext := range []string{".ts", ".tsx", ".mts", ".cts"} {
		if strings.HasSuffix(base, ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	return base + ".responses"
}

// ServiceFileFor derives the owning-unit source path paired with an
// endpoint source path: ".../users.controller.ts" → ".../users.service.ts".
// The second return is false when the endpoint file name does not follow
// the ".controller." convention.
func ServiceFileFor(controllerPath string) (string, bool) {
	if !strings.Contains(controllerPath, ".controller.") {
		return "", false
	}
	return strings.Replace(controllerPath, ".controller.", ".service.", 1), true
}
