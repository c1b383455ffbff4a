//go:build !windows

package editor

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// moduleSuffix returns the shared-object extension for the running OS.
func moduleSuffix() string {
	if runtime.GOOS == "darwin" {
		return "dylib"
	}
	return "so"
}

// probeModulePath checks that path exists and is readable via faccessat(2)
// before handing it to plugin.Open, so a missing or unreadable module
// fails with a clear "no such file" rather than plugin's opaque dlopen
// error text.
func probeModulePath(path string) error {
	return unix.Access(path, unix.R_OK)
}
