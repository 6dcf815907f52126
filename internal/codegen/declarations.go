package codegen

import (
	"fmt"
	"strings"

	"github.com/sand97/nest-responses-generator/internal/diagnostic"
	"github.com/sand97/nest-responses-generator/internal/naming"
	"github.com/sand97/nest-responses-generator/internal/shape"
)

// Member is one analyzable method of a unit, as collected by the scanner.
type Member struct {
	// Name is the source method name (e.g. "findAll").
	Name string
	// Shape is the inferred return shape.
	Shape shape.Shape
	// Summary is the JSDoc one-liner, used as the swagger description.
	Summary string
	// Line is the 1-based source line of the method, for diagnostics.
	Line int
}

// GeneratedMember records what was emitted for one unit member.
type GeneratedMember struct {
	// Member is the source method name.
	Member string `json:"member"`
	// Declaration is the top-level declaration name derived for the member.
	Declaration string `json:"declaration"`
	// Type is the class name to reference from swagger decorators. For array
	// members this is the synthetic element class, with IsArray set.
	Type string `json:"type"`
	// IsArray is true when the member's top-level shape is an array.
	IsArray bool `json:"isArray"`
	// Summary is the description carried into the rewritten decorator.
	Summary string `json:"summary,omitempty"`
}

// DeclarationModule is one generated <unit>.responses.ts module.
type DeclarationModule struct {
	// Unit is the owning class name (e.g. "UsersService").
	Unit string `json:"unit"`
	// SourceFile is the unit source path the module was derived from.
	SourceFile string `json:"sourceFile"`
	// FileBase is the output base name (e.g. "users.service.responses").
	FileBase string `json:"fileBase"`
	// LookupObject is the exported aggregate name (e.g. "UsersServiceResponses").
	LookupObject string `json:"lookupObject"`
	// Members lists the emitted members in source order.
	Members []GeneratedMember `json:"members"`
	// Source is the rendered TypeScript text.
	Source string `json:"-"`
}

// GenerateDeclarations renders the declaration module for one unit. Returns
// nil when the unit has no analyzable members, in which case no file must be
// written. Duplicate derived declaration names are reported as naming
// collisions and the first declaration wins.
func GenerateDeclarations(unit string, sourceFile string, members []Member, diags *diagnostic.Collector) *DeclarationModule {
	if len(members) == 0 {
		return nil
	}

	mod := &DeclarationModule{
		Unit:         unit,
		SourceFile:   sourceFile,
		FileBase:     naming.ResponsesFileBase(sourceFile),
		LookupObject: naming.LookupObject(unit),
	}

	e := NewEmitter()
	e.Line("// Generated by nest-responses. Do not edit.")
	e.Line("// Source: %s", sourceFile)
	e.Line("import { ApiProperty } from '@nestjs/swagger';")

	seen := map[string]string{}
	for _, m := range members {
		declName := naming.Declaration(unit, m.Name)
		if prev, dup := seen[declName]; dup {
			diags.Warn(diagnostic.CategoryNamingCollision, sourceFile, m.Line,
				fmt.Sprintf("members %q and %q both derive declaration %q; keeping the first", prev, m.Name, declName))
			continue
		}
		seen[declName] = m.Name
		mod.Members = append(mod.Members, emitMember(e, declName, m))
	}

	if len(mod.Members) == 0 {
		return nil
	}

	e.Blank()
	e.Block("export const %s =", mod.LookupObject)
	for _, gm := range mod.Members {
		e.Line("%s: %s,", gm.Member, gm.Type)
	}
	e.Dedent()
	e.Line("} as const;")
	e.Blank()
	e.Line("export type %s = typeof %s;", naming.LookupMapAlias(unit), mod.LookupObject)

	mod.Source = e.String()
	return mod
}

// emitMember renders the declaration(s) for one member: nested child classes
// first, then the top-level declaration.
func emitMember(e *Emitter, declName string, m Member) GeneratedMember {
	gm := GeneratedMember{
		Member:      m.Name,
		Declaration: declName,
		Type:        declName,
		Summary:     m.Summary,
	}

	s := m.Shape
	switch s.Kind {
	case shape.KindArray:
		gm.IsArray = true
		itemName := naming.Item(declName)
		gm.Type = itemName
		elem := shape.Unknown()
		if s.Element != nil {
			elem = *s.Element
		}
		if elem.Kind == shape.KindObject {
			emitClass(e, itemName, elem.Fields)
		} else {
			emitWrapperClass(e, itemName, elem)
		}
		e.Blank()
		e.Line("export const %s = %s;", declName, itemName)
		e.Line("export type %s = %s[];", declName, itemName)

	case shape.KindObject:
		emitClass(e, declName, s.Fields)

	default:
		emitWrapperClass(e, declName, s)
	}

	return gm
}

// emitClass renders a class declaration with one decorated property per
// field. Object and array-of-object fields get their own child classes,
// emitted depth-first so every referenced name is already declared.
func emitClass(e *Emitter, name string, fields []shape.Field) {
	type childClass struct {
		name   string
		fields []shape.Field
	}
	var children []childClass
	for _, f := range fields {
		switch {
		case f.Type.IsObject():
			children = append(children, childClass{naming.Child(name, f.Name), f.Type.Fields})
		case f.Type.IsArrayOfObjects():
			children = append(children, childClass{naming.Item(naming.Child(name, f.Name)), f.Type.Element.Fields})
		}
	}
	for _, c := range children {
		emitClass(e, c.name, c.fields)
	}

	e.Blank()
	e.Block("export class %s", name)
	for i, f := range fields {
		if i > 0 {
			e.Blank()
		}
		emitField(e, name, f)
	}
	e.EndBlock()
}

// emitField renders one @ApiProperty-decorated property.
func emitField(e *Emitter, owner string, f shape.Field) {
	switch {
	case f.Type.IsObject():
		child := naming.Child(owner, f.Name)
		e.Line("@ApiProperty({ type: () => %s })", child)
		e.Line("%s: %s;", f.Name, child)

	case f.Type.IsArrayOfObjects():
		item := naming.Item(naming.Child(owner, f.Name))
		e.Line("@ApiProperty({ type: () => [%s] })", item)
		e.Line("%s: %s[];", f.Name, item)

	case f.Type.Kind == shape.KindArray:
		elem := shape.Unknown()
		if f.Type.Element != nil {
			elem = *f.Type.Element
		}
		if elem.Kind == shape.KindPrimitive {
			e.Line("@ApiProperty({ example: [%s], isArray: true })", tsLiteral(shape.ExampleFor(f.Name, elem.Primitive)))
			e.Line("%s: %s[];", f.Name, tsPrimitive(elem.Primitive))
		} else {
			e.Line("@ApiProperty({ isArray: true })")
			e.Line("%s: any[];", f.Name)
		}

	case f.Type.Kind == shape.KindPrimitive:
		e.Line("@ApiProperty({ example: %s })", tsLiteral(shape.ExampleFor(f.Name, f.Type.Primitive)))
		e.Line("%s: %s;", f.Name, tsPrimitive(f.Type.Primitive))

	default:
		e.Line("@ApiProperty()")
		e.Line("%s: any;", f.Name)
	}
}

// emitWrapperClass renders the single-property wrapper used when a member's
// top-level shape is not an object: the payload lives in a "value" field.
// An unknown shape produces an empty class.
func emitWrapperClass(e *Emitter, name string, s shape.Shape) {
	e.Blank()
	if s.Kind != shape.KindPrimitive {
		e.Block("export class %s", name)
		e.EndBlock()
		return
	}
	e.Block("export class %s", name)
	e.Line("@ApiProperty({ example: %s })", tsLiteral(shape.ExampleFor("value", s.Primitive)))
	e.Line("value: %s;", tsPrimitive(s.Primitive))
	e.EndBlock()
}

// tsPrimitive maps a primitive kind to its TypeScript keyword.
func tsPrimitive(p shape.Primitive) string {
	switch p {
	case shape.Number:
		return "number"
	case shape.Boolean:
		return "boolean"
	default:
		return "string"
	}
}

// tsLiteral renders an example value as TypeScript source.
func tsLiteral(v any) string {
	switch t := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(t, "'", "\\'") + "'"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", t)
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%g", t), ".0")
	default:
		return fmt.Sprintf("%v", t)
	}
}
