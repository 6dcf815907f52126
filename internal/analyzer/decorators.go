// Package analyzer provides AST analysis for nest-responses-generator:
// decorator recognition, HTTP verb detection and the syntactic return-shape
// analyzer. Everything here works on the parse tree alone; no type checker
// is ever constructed.
package analyzer

import (
	"strconv"

	"github.com/microsoft/typescript-go/shim/ast"
)

// DecoratorInfo holds the parsed information from a decorator.
type DecoratorInfo struct {
	// Name is the decorator function name (e.g., "Controller", "Get", "InferResponse").
	Name string
	// Args holds the string arguments to the decorator call (e.g., ["users"] for @Controller("users")).
	Args []string
	// NumericArg holds a numeric argument if present (e.g., 201 for @HttpCode(201)).
	NumericArg *float64
	// ObjectArg holds the first object literal argument's property name→value AST nodes.
	// e.g., for @InferResponse({ status: 'created' }), this maps "status" → StringLiteral("created").
	ObjectArg map[string]*ast.Node
	// Node is the decorator AST node itself, kept for source splicing.
	Node *ast.Node
}

// ParseDecorator extracts the decorator name and arguments from a Decorator
// AST node. Returns nil if the decorator cannot be parsed.
func ParseDecorator(node *ast.Node) *DecoratorInfo {
	if node == nil || node.Kind != ast.KindDecorator {
		return nil
	}
	expr := node.AsDecorator().Expression

	switch expr.Kind {
	case ast.KindIdentifier:
		// Simple decorator without parentheses: @Injectable
		return &DecoratorInfo{Name: expr.AsIdentifier().Text, Node: node}

	case ast.KindCallExpression:
		// Decorator with call: @Controller('users'), @Get(':id'), @HttpCode(201)
		call := expr.AsCallExpression()
		name := decoratorCalleeName(call.Expression)
		if name == "" {
			return nil
		}

		info := &DecoratorInfo{Name: name, Node: node}
		if call.Arguments != nil {
			for _, arg := range call.Arguments.Nodes {
				switch arg.Kind {
				case ast.KindStringLiteral:
					info.Args = append(info.Args, arg.AsStringLiteral().Text)
				case ast.KindNoSubstitutionTemplateLiteral:
					info.Args = append(info.Args, arg.Text())
				case ast.KindNumericLiteral:
					if num, err := strconv.ParseFloat(arg.Text(), 64); err == nil {
						info.NumericArg = &num
					}
				case ast.KindObjectLiteralExpression:
					info.ObjectArg = objectLiteralProps(arg)
				}
			}
		}
		return info

	case ast.KindPropertyAccessExpression:
		// Property access decorator without call: @nestjs.Injectable
		pa := expr.AsPropertyAccessExpression()
		return &DecoratorInfo{Name: pa.Name().AsIdentifier().Text, Node: node}
	}

	return nil
}

// objectLiteralProps extracts property assignments from an object literal
// expression as a map of property name → value AST node.
func objectLiteralProps(objLit *ast.Node) map[string]*ast.Node {
	if objLit.Kind != ast.KindObjectLiteralExpression {
		return nil
	}
	ole := objLit.AsObjectLiteralExpression()
	if ole.Properties == nil {
		return nil
	}
	props := make(map[string]*ast.Node)
	for _, prop := range ole.Properties.Nodes {
		if prop.Kind != ast.KindPropertyAssignment {
			continue
		}
		pa := prop.AsPropertyAssignment()
		if pa.Name() == nil {
			continue
		}
		var name string
		switch pa.Name().Kind {
		case ast.KindIdentifier:
			name = pa.Name().AsIdentifier().Text
		case ast.KindStringLiteral:
			name = pa.Name().AsStringLiteral().Text
		default:
			continue
		}
		props[name] = pa.Initializer
	}
	return props
}

// decoratorCalleeName extracts the function name from a decorator call
// expression's callee.
func decoratorCalleeName(expr *ast.Node) string {
	switch expr.Kind {
	case ast.KindIdentifier:
		return expr.AsIdentifier().Text
	case ast.KindPropertyAccessExpression:
		return expr.AsPropertyAccessExpression().Name().AsIdentifier().Text
	}
	return ""
}

// HTTPVerbFor maps a NestJS route decorator name to its HTTP verb. The
// allow-list is fixed; anything else returns "".
func HTTPVerbFor(decoratorName string) string {
	switch decoratorName {
	case "Get":
		return "GET"
	case "Post":
		return "POST"
	case "Put":
		return "PUT"
	case "Delete":
		return "DELETE"
	case "Patch":
		return "PATCH"
	case "Head":
		return "HEAD"
	case "Options":
		return "OPTIONS"
	}
	return ""
}

// MethodHTTPVerb returns the HTTP verb of the first route decorator on a
// method node, or "" when the method has none (not a handler).
func MethodHTTPVerb(methodNode *ast.Node) string {
	for _, dec := range methodNode.Decorators() {
		info := ParseDecorator(dec)
		if info == nil {
			continue
		}
		if verb := HTTPVerbFor(info.Name); verb != "" {
			return verb
		}
	}
	return ""
}

// FindDecorator returns the parsed decorator with the given name attached to
// a class or method node, or nil.
func FindDecorator(node *ast.Node, name string) *DecoratorInfo {
	for _, dec := range node.Decorators() {
		info := ParseDecorator(dec)
		if info != nil && info.Name == name {
			return info
		}
	}
	return nil
}
