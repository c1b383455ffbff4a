//go:build windows

package editor

import "golang.org/x/sys/windows"

// moduleSuffix returns the shared-library extension for the running OS.
func moduleSuffix() string { return "dll" }

// probeModulePath checks that path exists and is readable before handing
// it to plugin.Open (which is unsupported on windows in the upstream Go
// toolchain as of this writing, but the probe still gives a clear error
// ahead of that call rather than relying on its message).
func probeModulePath(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return err
	}
	if attrs&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		return windows.ERROR_FILE_NOT_FOUND
	}
	return nil
}
