package registry

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed forms/*.yaml
var embeddedForms embed.FS

// EmbeddedFS returns the bundled form documents. Pass it to LoadFS, or use
// Default for the parsed registry.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry built from the bundled documents: User,
// Address and Payment Information.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = LoadFS(EmbeddedFS())
	})
	return defaultRegistry, defaultErr
}
