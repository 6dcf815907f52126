// Package cachedvfs re-exports typescript-go's caching filesystem wrapper.
package cachedvfs

import "github.com/microsoft/typescript-go/internal/vfs/cachedvfs"

var From = cachedvfs.From
