package analyzer

import (
	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/sand97/nest-responses-generator/internal/shape"
)

// maxInferDepth bounds recursion through nested literals and type nodes.
// Anything deeper degrades to Unknown instead of risking a stack overflow.
const maxInferDepth = 20

// AnalyzeMethod infers the return shape of a method declaration.
//
// Priority order:
//  1. an explicit return-type annotation, analyzed structurally;
//  2. the first return statement's expression, analyzed structurally;
//  3. Unknown when the method has neither.
//
// The analysis never fails: unsupported constructs degrade to Unknown, and
// a panic anywhere below is converted into an Unknown result.
func AnalyzeMethod(methodNode *ast.Node) (result shape.Shape) {
	defer func() {
		if r := recover(); r != nil {
			result = shape.Unknown()
		}
	}()

	method := methodNode.AsMethodDeclaration()

	if method.Type != nil {
		if s := analyzeTypeNode(method.Type, 0); s.Kind != shape.KindUnknown {
			return s
		}
	}

	if ret := firstReturnExpression(method.Body); ret != nil {
		return analyzeExpression(ret, 0)
	}

	return shape.Unknown()
}

// analyzeTypeNode analyzes a return-type annotation structurally. Promise
// and Observable wrappers are unwrapped; named references resolve through
// the fixed registry of well-known domain types, falling back to the
// single-field default object for unregistered names.
func analyzeTypeNode(node *ast.Node, depth int) shape.Shape {
	if node == nil || depth > maxInferDepth {
		return shape.Unknown()
	}

	switch node.Kind {
	case ast.KindParenthesizedType:
		return analyzeTypeNode(singleTypeChild(node), depth)

	case ast.KindArrayType:
		elem := analyzeTypeNode(node.AsArrayTypeNode().ElementType, depth+1)
		return shape.Array(elem)

	case ast.KindTypeReference:
		ref := node.AsTypeReferenceNode()
		if ref.TypeName == nil || ref.TypeName.Kind != ast.KindIdentifier {
			return shape.Unknown()
		}
		name := ref.TypeName.Text()

		// Wrapper types: analyze the single type argument instead.
		if name == "Promise" || name == "Observable" {
			if ref.TypeArguments != nil && len(ref.TypeArguments.Nodes) == 1 {
				return analyzeTypeNode(ref.TypeArguments.Nodes[0], depth)
			}
			return shape.Unknown()
		}
		if name == "Array" {
			if ref.TypeArguments != nil && len(ref.TypeArguments.Nodes) == 1 {
				return shape.Array(analyzeTypeNode(ref.TypeArguments.Nodes[0], depth+1))
			}
			return shape.Array(shape.Unknown())
		}

		if s, ok := shape.Lookup(name); ok {
			return s
		}
		return shape.DefaultNamed()

	case ast.KindTypeLiteral:
		return analyzeTypeLiteral(node, depth)

	case ast.KindUnionType:
		// Best effort only: take the first member of the union.
		if first := firstUnionMember(node); first != nil {
			return analyzeTypeNode(first, depth)
		}
		return shape.Unknown()

	case ast.KindStringKeyword:
		return shape.Prim(shape.String)
	case ast.KindNumberKeyword:
		return shape.Prim(shape.Number)
	case ast.KindBooleanKeyword:
		return shape.Prim(shape.Boolean)
	}

	return shape.Unknown()
}

// analyzeTypeLiteral turns an inline object-literal type into an object
// shape, one field per property signature in source order. A member without
// a type annotation becomes an Unknown field rather than a failure.
func analyzeTypeLiteral(node *ast.Node, depth int) shape.Shape {
	lit := node.AsTypeLiteralNode()
	var fields []shape.Field
	if lit.Members != nil {
		for _, member := range lit.Members.Nodes {
			if member.Kind != ast.KindPropertySignature {
				continue
			}
			name := propertyName(member.Name())
			if name == "" {
				continue
			}
			fieldType := shape.Unknown()
			if t := member.Type(); t != nil {
				fieldType = analyzeTypeNode(t, depth+1)
			}
			fields = append(fields, shape.Field{Name: name, Type: fieldType})
		}
	}
	return shape.Object(fields...)
}

// firstUnionMember returns the first constituent of a union type node.
func firstUnionMember(node *ast.Node) *ast.Node {
	var first *ast.Node
	node.ForEachChild(func(child *ast.Node) bool {
		first = child
		return true // stop
	})
	return first
}

// singleTypeChild returns the sole child type of a wrapper node such as a
// parenthesized type.
func singleTypeChild(node *ast.Node) *ast.Node {
	var only *ast.Node
	node.ForEachChild(func(child *ast.Node) bool {
		only = child
		return true
	})
	return only
}

// firstReturnExpression finds the first return statement carrying an
// expression anywhere inside a method body, in source order.
func firstReturnExpression(body *ast.Node) *ast.Node {
	if body == nil {
		return nil
	}
	var found *ast.Node
	var walk func(node *ast.Node) bool
	walk = func(node *ast.Node) bool {
		if node == nil || found != nil {
			return true
		}
		if node.Kind == ast.KindReturnStatement {
			if expr := node.AsReturnStatement().Expression; expr != nil {
				found = expr
				return true
			}
		}
		node.ForEachChild(func(child *ast.Node) bool {
			return walk(child)
		})
		return found != nil
	}
	body.ForEachChild(func(child *ast.Node) bool {
		return walk(child)
	})
	return found
}

// analyzeExpression infers a shape from a return expression.
func analyzeExpression(expr *ast.Node, depth int) shape.Shape {
	if expr == nil || depth > maxInferDepth {
		return shape.Unknown()
	}

	switch expr.Kind {
	case ast.KindParenthesizedExpression:
		return analyzeExpression(expr.AsParenthesizedExpression().Expression, depth)
	case ast.KindAwaitExpression:
		return analyzeExpression(expr.AsAwaitExpression().Expression, depth)
	case ast.KindAsExpression:
		return analyzeExpression(expr.AsAsExpression().Expression, depth)
	case ast.KindNonNullExpression:
		return analyzeExpression(expr.AsNonNullExpression().Expression, depth)
	case ast.KindSatisfiesExpression:
		return analyzeExpression(expr.AsSatisfiesExpression().Expression, depth)

	case ast.KindObjectLiteralExpression:
		return analyzeObjectLiteral(expr, depth)

	case ast.KindArrayLiteralExpression:
		arr := expr.AsArrayLiteralExpression()
		if arr.Elements == nil || len(arr.Elements.Nodes) == 0 {
			return shape.Array(shape.Unknown())
		}
		return shape.Array(analyzeExpression(arr.Elements.Nodes[0], depth+1))

	case ast.KindStringLiteral, ast.KindNoSubstitutionTemplateLiteral, ast.KindTemplateExpression:
		return shape.Prim(shape.String)
	case ast.KindNumericLiteral:
		return shape.Prim(shape.Number)
	case ast.KindTrueKeyword, ast.KindFalseKeyword:
		return shape.Prim(shape.Boolean)

	case ast.KindBinaryExpression:
		// `expr || fallback` and `expr ?? fallback`: the right operand is
		// the default-value branch and carries the interesting shape.
		bin := expr.AsBinaryExpression()
		if bin.OperatorToken != nil &&
			(bin.OperatorToken.Kind == ast.KindBarBarToken || bin.OperatorToken.Kind == ast.KindQuestionQuestionToken) {
			return analyzeExpression(bin.Right, depth)
		}
		return shape.Unknown()

	case ast.KindPropertyAccessExpression:
		pa := expr.AsPropertyAccessExpression()
		if pa.Name() != nil && pa.Name().Kind == ast.KindIdentifier {
			return shape.MemberAccessShape(pa.Name().Text())
		}
		return shape.Prim(shape.String)
	}

	return shape.Unknown()
}

// analyzeObjectLiteral turns an object-literal expression into an object
// shape. Shorthand properties are inferred from the name-pattern table;
// spread assignments contribute nothing.
func analyzeObjectLiteral(expr *ast.Node, depth int) shape.Shape {
	obj := expr.AsObjectLiteralExpression()
	var fields []shape.Field
	if obj.Properties != nil {
		for _, prop := range obj.Properties.Nodes {
			switch prop.Kind {
			case ast.KindPropertyAssignment:
				pa := prop.AsPropertyAssignment()
				name := propertyName(pa.Name())
				if name == "" {
					continue
				}
				fields = append(fields, shape.Field{
					Name: name,
					Type: analyzeExpression(pa.Initializer, depth+1),
				})
			case ast.KindShorthandPropertyAssignment:
				name := propertyName(prop.Name())
				if name == "" {
					continue
				}
				fields = append(fields, shape.Field{
					Name: name,
					Type: shape.ShorthandShape(name),
				})
			}
		}
	}
	return shape.Object(fields...)
}

// propertyName extracts the text of an identifier or string-literal property
// name node.
func propertyName(name *ast.Node) string {
	if name == nil {
		return ""
	}
	switch name.Kind {
	case ast.KindIdentifier:
		return name.AsIdentifier().Text
	case ast.KindStringLiteral:
		return name.AsStringLiteral().Text
	}
	return ""
}
