// Package shape defines the structural description of an inferred return
// value. It is the normalized model shared by the return analyzer and the
// declaration emitter. It is deliberately small: primitives, arrays, objects and
// an explicit Unknown that degrades gracefully instead of failing.
package shape

// Kind identifies the primary classification of a shape.
type Kind string

const (
	KindPrimitive Kind = "primitive"
	KindArray     Kind = "array"
	KindObject    Kind = "object"
	KindUnknown   Kind = "unknown"
)

// Primitive names a scalar TypeScript type.
type Primitive string

const (
	String  Primitive = "string"
	Number  Primitive = "number"
	Boolean Primitive = "boolean"
)

// Shape is the structural type description inferred for a return value.
type Shape struct {
	// Kind identifies which of the variant fields below is meaningful.
	Kind Kind `json:"kind"`

	// Primitive holds the scalar kind. Only set when Kind == KindPrimitive.
	Primitive Primitive `json:"primitive,omitempty"`

	// Element holds the element shape. Only set when Kind == KindArray.
	// May recurse for arrays of objects or arrays of arrays.
	Element *Shape `json:"element,omitempty"`

	// Fields holds the object fields in first-seen order. Only set when
	// Kind == KindObject. Order is load-bearing: it determines emitted
	// field order and therefore snapshot stability.
	Fields []Field `json:"fields,omitempty"`
}

// Field is a single named member of an object shape.
type Field struct {
	Name string `json:"name"`
	Type Shape  `json:"type"`
}

// Unknown returns the shape used when inference failed or the construct is
// unsupported. It is still emitted (as an empty declaration), never an error.
func Unknown() Shape {
	return Shape{Kind: KindUnknown}
}

// Prim returns a primitive shape of the given scalar kind.
func Prim(p Primitive) Shape {
	return Shape{Kind: KindPrimitive, Primitive: p}
}

// Array returns an array shape over the given element shape.
func Array(element Shape) Shape {
	return Shape{Kind: KindArray, Element: &element}
}

// Object returns an object shape over the given fields. The slice is used
// as-is; callers own the ordering.
func Object(fields ...Field) Shape {
	return Shape{Kind: KindObject, Fields: fields}
}

// IsObject reports whether the shape is an object.
func (s Shape) IsObject() bool { return s.Kind == KindObject }

// IsArrayOfObjects reports whether the shape is an array whose element is an
// object. Such fields get a synthetic child declaration with an Item suffix.
func (s Shape) IsArrayOfObjects() bool {
	return s.Kind == KindArray && s.Element != nil && s.Element.Kind == KindObject
}

// FieldNamed returns the field with the given name, if present.
func (s Shape) FieldNamed(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
