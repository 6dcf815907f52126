// Package parser re-exports typescript-go's internal single-file parser.
package parser

import "github.com/microsoft/typescript-go/internal/parser"

var ParseSourceFile = parser.ParseSourceFile
