// Package scanner re-exports the subset of typescript-go's internal scanner
// package used by nest-responses-generator.
package scanner

import "github.com/microsoft/typescript-go/internal/scanner"

// SkipTrivia returns the position of the first non-trivia character at or
// after pos (skips whitespace and comments).
var SkipTrivia = scanner.SkipTrivia

// GetTokenPosOfNode returns the real token start of a node, excluding the
// leading trivia included in Node.Pos().
var GetTokenPosOfNode = scanner.GetTokenPosOfNode

// GetECMALineAndCharacterOfPosition converts a position into 0-based line
// and character numbers.
var GetECMALineAndCharacterOfPosition = scanner.GetECMALineAndCharacterOfPosition
