// Package editor implements the editor root described in spec.md §4.6: the
// process-wide coordinator that owns the string arena, the pane tree's
// root, the freelists, the idle-callback queue, and the dynamic module
// loader, and that installs the fixed set of top-level handlers every
// editor instance exposes.
//
// Root generalizes cmd/hivectl/root.go's single package-level Cobra root
// (global flags, one process-wide command tree) into a value type so more
// than one can exist in a process, and borrows hive/tx.Manager's shape for
// its idle-drain protocol: Manager sequences Begin/Commit through a single
// owner with deferred, ordered flush work; Root sequences registration/use
// through a single owner with deferred, ordered freelist and idle-callback
// drains on each OnIdle call.
package editor

import (
	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/internal/arena"
	"github.com/joshuapare/panekit/mark"
	"github.com/joshuapare/panekit/pane"
	"github.com/joshuapare/panekit/registry"
)

// globalRegistry is shared by every Root in the process, chained beneath
// each Root's own registry. The fixed top-level handlers are installed into
// each Root's own registry by installHandlers, and SetCommand also writes to
// the per-root registry; nothing in this package adds entries to
// globalRegistry itself.
var globalRegistry = registry.New()

// ModuleInit is a module's entry point, invoked once by LoadModule with the
// Root that loaded it. A module registers commands via Root.SetCommand
// and/or attaches panes under Root.Pane(), per spec.md §4.6: "A module's
// init function registers commands via global-set-command and/or attaches
// panes."
type ModuleInit func(r *Root) error

// Options configures a new Root.
type Options struct {
	// ModuleSearchPath lists directories searched, in order, for dynamically
	// loaded edlib-<name>.<platform-suffix> shared objects.
	ModuleSearchPath []string

	// Builtins pre-registers modules LoadModule can invoke without going to
	// disk, per spec.md §4.6 "global-load-module name first checks a
	// compiled-in builtins table."
	Builtins map[string]ModuleInit
}

// idleEntry is one pending idle-callback registration from editor-on-idle.
type idleEntry struct {
	focus command.Pane
	comm  command.Command
}

// Root is the process-wide editor coordinator (spec.md §4.6). There is
// ordinarily exactly one per running editor instance; each owns its own
// arena, pane tree, and registry (chained to the shared globalRegistry).
type Root struct {
	registry *registry.Registry
	root     *pane.Pane
	arena    *arena.Arena

	builtins   map[string]ModuleInit
	loaded     map[string]bool
	searchPath []string

	paneFreelist []*pane.Pane
	markFreelist []*mark.Mark
	idle         []idleEntry
}

// New creates an editor root with a fresh arena and pane tree, installs
// the fixed top-level handlers (spec.md §4.6), and registers opts.Builtins
// so LoadModule can find them without touching disk.
func New(opts Options) *Root {
	r := &Root{
		registry:   registry.New(),
		arena:      arena.New(),
		builtins:   map[string]ModuleInit{},
		loaded:     map[string]bool{},
		searchPath: opts.ModuleSearchPath,
	}
	for name, init := range opts.Builtins {
		r.builtins[name] = init
	}
	r.registry.Chain(globalRegistry)
	r.root = pane.Register(nil, 0, command.NewLookup(r.registry), r)
	r.installHandlers()
	return r
}

// Pane returns the root of this editor's pane tree. Modules attach panes
// as descendants of it.
func (r *Root) Pane() *pane.Pane { return r.root }

// Registry returns this root's per-root registry (chained beneath the
// shared global one).
func (r *Root) Registry() *registry.Registry { return r.registry }

// Arena returns this root's string arena.
func (r *Root) Arena() *arena.Arena { return r.arena }

// Save interns s in the root's string arena — the generalized strsave of
// spec.md §4.6.
func (r *Root) Save(s string) string { return r.arena.Save(s) }

// SetCommand registers cmd under key in this root's registry, the
// programmatic form of the global-set-command handler.
func (r *Root) SetCommand(key string, cmd command.Command) error {
	return r.registry.KeyAdd(key, cmd)
}

// GetCommand looks up key in this root's registry (falling through to the
// global registry), the programmatic form of global-get-command.
func (r *Root) GetCommand(key string) (command.Command, bool) {
	return r.registry.Lookup(key)
}

// ClosePane closes p and defers its reclamation onto this root's
// freelist, per spec.md §4.2 "defers freeing until idle via the editor's
// freelist." Go's GC reclaims p once the freelist entry itself is dropped
// on the next OnIdle drain; ClosePane's job is only to delay that past the
// current call so nothing still mid-dispatch observes p vanish early.
func (r *Root) ClosePane(p *pane.Pane) {
	p.Close()
	r.paneFreelist = append(r.paneFreelist, p)
}

// FreeMark defers m's reclamation onto this root's mark freelist.
func (r *Root) FreeMark(m *mark.Mark) {
	r.markFreelist = append(r.markFreelist, m)
}
