package editor

import (
	"fmt"
	"path/filepath"
	"plugin"
)

// EdlibInitSymbol is the well-known exported symbol a dynamically loaded
// module must provide, per spec.md §4.6 "resolves a well-known
// initialization symbol, and invokes it with the editor root." It must
// have type func(*editor.Root) error.
const EdlibInitSymbol = "EdlibInit"

// LoadModule loads name: first checking the compiled-in builtins table,
// then dynamically loading edlib-<name>.<platform-suffix> from
// ModuleSearchPath, per spec.md §4.6. Loading the same module twice is a
// no-op that reports success, matching the idempotent feel of the rest of
// the registration API (KeyAdd shadows rather than errors on repeats).
func (r *Root) LoadModule(name string) error {
	if r.loaded[name] {
		return nil
	}
	if init, ok := r.builtins[name]; ok {
		if err := init(r); err != nil {
			return fmt.Errorf("editor: builtin module %q: %w", name, err)
		}
		r.loaded[name] = true
		return nil
	}

	path, err := r.findModuleFile(name)
	if err != nil {
		return err
	}
	if err := probeModulePath(path); err != nil {
		return fmt.Errorf("editor: module %q at %s: %w", name, path, err)
	}

	plug, err := plugin.Open(path)
	if err != nil {
		return fmt.Errorf("editor: opening module %q: %w", name, err)
	}
	sym, err := plug.Lookup(EdlibInitSymbol)
	if err != nil {
		return fmt.Errorf("editor: module %q missing %s: %w", name, EdlibInitSymbol, err)
	}
	initFn, ok := sym.(func(*Root) error)
	if !ok {
		return fmt.Errorf("editor: module %q's %s has the wrong signature", name, EdlibInitSymbol)
	}
	if err := initFn(r); err != nil {
		return fmt.Errorf("editor: module %q init: %w", name, err)
	}
	r.loaded[name] = true
	return nil
}

// findModuleFile locates edlib-<name>.<platform-suffix> on the search
// path, returning the first candidate that exists.
func (r *Root) findModuleFile(name string) (string, error) {
	filename := "edlib-" + name + "." + moduleSuffix()
	for _, dir := range r.searchPath {
		candidate := filepath.Join(dir, filename)
		if probeModulePath(candidate) == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("editor: module %q (%s) not found on search path %v", name, filename, r.searchPath)
}
