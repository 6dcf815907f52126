// Package ast re-exports the subset of typescript-go's internal ast package
// used by nest-responses-generator. The module path trick (this module is
// declared under github.com/microsoft/typescript-go/) grants access to the
// upstream internal packages.
package ast

import "github.com/microsoft/typescript-go/internal/ast"

type (
	Node         = ast.Node
	NodeList     = ast.NodeList
	ModifierList = ast.ModifierList
	SourceFile   = ast.SourceFile
	Kind         = ast.Kind

	ClassDeclaration            = ast.ClassDeclaration
	MethodDeclaration           = ast.MethodDeclaration
	ParameterDeclaration        = ast.ParameterDeclaration
	Decorator                   = ast.Decorator
	CallExpression              = ast.CallExpression
	Identifier                  = ast.Identifier
	StringLiteral               = ast.StringLiteral
	ObjectLiteralExpression     = ast.ObjectLiteralExpression
	PropertyAssignment          = ast.PropertyAssignment
	ShorthandPropertyAssignment = ast.ShorthandPropertyAssignment
	ArrayLiteralExpression      = ast.ArrayLiteralExpression
	ReturnStatement             = ast.ReturnStatement
	BinaryExpression            = ast.BinaryExpression
	PropertyAccessExpression    = ast.PropertyAccessExpression
	ArrayTypeNode               = ast.ArrayTypeNode
	TypeReferenceNode           = ast.TypeReferenceNode
	TypeLiteralNode             = ast.TypeLiteralNode
	ImportDeclaration           = ast.ImportDeclaration
	ImportClause                = ast.ImportClause
	NamedImports                = ast.NamedImports
	ImportSpecifier             = ast.ImportSpecifier
	JSDoc                       = ast.JSDoc

	SourceFileParseOptions = ast.SourceFileParseOptions
	JSDocParsingMode       = ast.JSDocParsingMode
)

const (
	JSDocParsingModeParseAll = ast.JSDocParsingModeParseAll
)

const (
	KindClassDeclaration              = ast.KindClassDeclaration
	KindMethodDeclaration             = ast.KindMethodDeclaration
	KindConstructor                   = ast.KindConstructor
	KindGetAccessor                   = ast.KindGetAccessor
	KindSetAccessor                   = ast.KindSetAccessor
	KindDecorator                     = ast.KindDecorator
	KindCallExpression                = ast.KindCallExpression
	KindIdentifier                    = ast.KindIdentifier
	KindPrivateIdentifier             = ast.KindPrivateIdentifier
	KindPropertyAccessExpression      = ast.KindPropertyAccessExpression
	KindStringLiteral                 = ast.KindStringLiteral
	KindNumericLiteral                = ast.KindNumericLiteral
	KindNoSubstitutionTemplateLiteral = ast.KindNoSubstitutionTemplateLiteral
	KindTemplateExpression            = ast.KindTemplateExpression
	KindObjectLiteralExpression       = ast.KindObjectLiteralExpression
	KindPropertyAssignment            = ast.KindPropertyAssignment
	KindShorthandPropertyAssignment   = ast.KindShorthandPropertyAssignment
	KindSpreadAssignment              = ast.KindSpreadAssignment
	KindArrayLiteralExpression        = ast.KindArrayLiteralExpression
	KindReturnStatement               = ast.KindReturnStatement
	KindTrueKeyword                   = ast.KindTrueKeyword
	KindFalseKeyword                  = ast.KindFalseKeyword
	KindNullKeyword                   = ast.KindNullKeyword
	KindBinaryExpression              = ast.KindBinaryExpression
	KindBarBarToken                   = ast.KindBarBarToken
	KindQuestionQuestionToken         = ast.KindQuestionQuestionToken
	KindAwaitExpression               = ast.KindAwaitExpression
	KindParenthesizedExpression       = ast.KindParenthesizedExpression
	KindAsExpression                  = ast.KindAsExpression
	KindNonNullExpression             = ast.KindNonNullExpression
	KindSatisfiesExpression           = ast.KindSatisfiesExpression
	KindArrayType                     = ast.KindArrayType
	KindTypeReference                 = ast.KindTypeReference
	KindTypeLiteral                   = ast.KindTypeLiteral
	KindPropertySignature             = ast.KindPropertySignature
	KindParenthesizedType             = ast.KindParenthesizedType
	KindUnionType                     = ast.KindUnionType
	KindStringKeyword                 = ast.KindStringKeyword
	KindNumberKeyword                 = ast.KindNumberKeyword
	KindBooleanKeyword                = ast.KindBooleanKeyword
	KindAnyKeyword                    = ast.KindAnyKeyword
	KindUnknownKeyword                = ast.KindUnknownKeyword
	KindVoidKeyword                   = ast.KindVoidKeyword
	KindUndefinedKeyword              = ast.KindUndefinedKeyword
	KindNeverKeyword                  = ast.KindNeverKeyword
	KindObjectKeyword                 = ast.KindObjectKeyword
	KindImportDeclaration             = ast.KindImportDeclaration
	KindImportClause                  = ast.KindImportClause
	KindNamedImports                  = ast.KindNamedImports
	KindImportSpecifier               = ast.KindImportSpecifier
	KindVariableStatement             = ast.KindVariableStatement
	KindFunctionDeclaration           = ast.KindFunctionDeclaration
	KindExportAssignment              = ast.KindExportAssignment
	KindJSDoc                         = ast.KindJSDoc
	KindJSDocTag                      = ast.KindJSDocTag
	KindJSDocText                     = ast.KindJSDocText
	KindJSDocLink                     = ast.KindJSDocLink
	KindJSDocLinkCode                 = ast.KindJSDocLinkCode
	KindJSDocLinkPlain                = ast.KindJSDocLinkPlain
	KindPrivateKeyword                = ast.KindPrivateKeyword
	KindProtectedKeyword              = ast.KindProtectedKeyword
	KindStaticKeyword                 = ast.KindStaticKeyword
	KindAbstractKeyword               = ast.KindAbstractKeyword
	KindExportKeyword                 = ast.KindExportKeyword
	KindAsyncKeyword                  = ast.KindAsyncKeyword
)
