// Package core re-exports the subset of typescript-go's internal core package
// used by nest-responses-generator.
package core

import "github.com/microsoft/typescript-go/internal/core"

type ScriptKind = core.ScriptKind

const (
	ScriptKindTS  = core.ScriptKindTS
	ScriptKindTSX = core.ScriptKindTSX
)
