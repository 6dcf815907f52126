// Package tspath re-exports the subset of typescript-go's internal tspath
// package used by nest-responses-generator.
package tspath

import "github.com/microsoft/typescript-go/internal/tspath"

type Path = tspath.Path

var (
	ResolvePath   = tspath.ResolvePath
	NormalizePath = tspath.NormalizePath
	ToPath        = tspath.ToPath
)
