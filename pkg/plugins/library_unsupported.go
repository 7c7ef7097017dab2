//go:build !(linux || darwin || freebsd)

package plugins

import (
	"fmt"
	"runtime"
)

// OpenLibrary is the default LibraryOpener. Dynamic plugin loading is not
// available on this platform.
func OpenLibrary(path string) (Library, error) {
	return nil, fmt.Errorf("dynamic plugin loading is not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
}
