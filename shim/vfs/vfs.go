// Package vfs re-exports typescript-go's internal virtual filesystem
// interfaces used by nest-responses-generator.
package vfs

import "github.com/microsoft/typescript-go/internal/vfs"

type (
	FS          = vfs.FS
	FileInfo    = vfs.FileInfo
	Entries     = vfs.Entries
	WalkDirFunc = vfs.WalkDirFunc
	DirEntry    = vfs.DirEntry
)
