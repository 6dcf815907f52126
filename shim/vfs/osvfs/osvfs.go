// Package osvfs re-exports typescript-go's OS-backed filesystem.
package osvfs

import "github.com/microsoft/typescript-go/internal/vfs/osvfs"

var FS = osvfs.FS
