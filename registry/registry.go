// Package registry implements the keymap: the string-keyed lookup structure
// that maps a dispatch key to a command.Command, per spec.md §3 "Registry
// (keymap)" and §4.1 "Registry and dispatch".
//
// A Registry holds three overlapping indexes — exact, half-open range, and
// prefix — and registries may be chained so a lookup searches several in
// declaration order. This mirrors hive/walker/validator.go's read-only
// structural-inspection style for Entries(), and the sorted-range
// comparisons in pkg/hive/diff.go for the range index.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/panekit/command"
)

// ErrNilCommand is returned by the Add* methods when cmd is nil.
var ErrNilCommand = errors.New("registry: nil command")

// EntryKind distinguishes the three index types, exposed for Entries().
type EntryKind int

const (
	KindExact EntryKind = iota
	KindRange
	KindPrefix
)

func (k EntryKind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindRange:
		return "range"
	case KindPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Entry is a read-only view of one registration, returned by Entries().
type Entry struct {
	Kind EntryKind
	Key  string // exact key, or prefix string
	Lo   string // range lower bound (KindRange only)
	Hi   string // range upper bound, exclusive (KindRange only)
	Cmd  command.Command
}

type rangeEntry struct {
	lo, hi string
	cmd    command.Command
}

type prefixEntry struct {
	prefix string
	cmd    command.Command
}

// Registry is a single keymap level. The zero value is ready to use.
type Registry struct {
	exact   map[string]command.Command
	ranges  []rangeEntry  // kept sorted by lo
	prefix  []prefixEntry // kept sorted by prefix, longest-first on lookup
	chained []*Registry   // additional registries searched after this one
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{exact: make(map[string]command.Command)}
}

// Chain appends next to the set of registries searched after r, preserving
// declaration order (spec.md §4.1 step 1: "Walk the chain of registries in
// declaration order").
func (r *Registry) Chain(next *Registry) {
	r.chained = append(r.chained, next)
}

// KeyAdd registers an exact-match handler. A later call with the same key
// replaces the earlier one, per spec.md §4.1 ("later inserts shadow earlier
// ones at the same key").
func (r *Registry) KeyAdd(key string, cmd command.Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	if r.exact == nil {
		r.exact = make(map[string]command.Command)
	}
	r.exact[key] = cmd
	return nil
}

// KeyAddRange registers a handler for the half-open interval [lo, hi). It
// fails with ErrConflict if the new range overlaps any range already
// registered in this Registry (ranges are required to be non-overlapping by
// construction, spec.md §4.1 step 2).
func (r *Registry) KeyAddRange(lo, hi string, cmd command.Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	if !(lo < hi) {
		return fmt.Errorf("registry: empty or inverted range [%q, %q)", lo, hi)
	}
	for _, existing := range r.ranges {
		if rangesOverlap(lo, hi, existing.lo, existing.hi) {
			return fmt.Errorf("%w: [%q,%q) overlaps existing [%q,%q)",
				ErrConflict, lo, hi, existing.lo, existing.hi)
		}
	}
	r.ranges = append(r.ranges, rangeEntry{lo: lo, hi: hi, cmd: cmd})
	sort.Slice(r.ranges, func(i, j int) bool { return r.ranges[i].lo < r.ranges[j].lo })
	return nil
}

// KeyAddPrefix registers a handler for every key that has prefix as a
// leading substring. A later call with the same prefix replaces the
// earlier one, matching KeyAdd's shadowing rule.
func (r *Registry) KeyAddPrefix(prefix string, cmd command.Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	for i := range r.prefix {
		if r.prefix[i].prefix == prefix {
			r.prefix[i].cmd = cmd
			return nil
		}
	}
	r.prefix = append(r.prefix, prefixEntry{prefix: prefix, cmd: cmd})
	sort.Slice(r.prefix, func(i, j int) bool { return r.prefix[i].prefix < r.prefix[j].prefix })
	return nil
}

// ErrConflict is wrapped into the error returned by KeyAddRange on overlap.
// Callers that need the ABI-stable command.Econflict status (rather than a
// Go error) get it from Lookup's caller, key_handle, or their own
// registration-time handling — Econflict is a dispatch-time Status, this is
// a construction-time error, per spec.md §7's distinction between Go-level
// construction failures and the command return-code ABI.
var ErrConflict = errors.New("registry: overlapping range")

// Lookup implements the policy from spec.md §4.1 step 2: within a single
// Registry, prefer an exact match, else the longest matching prefix, else
// the range containing key. It then walks the chain in declaration order
// and returns the first hit anywhere (step 1 + step 3: "First hit wins
// across the chain").
func (r *Registry) Lookup(key string) (command.Command, bool) {
	if cmd, ok := r.lookupLocal(key); ok {
		return cmd, true
	}
	for _, next := range r.chained {
		if cmd, ok := next.Lookup(key); ok {
			return cmd, true
		}
	}
	return nil, false
}

func (r *Registry) lookupLocal(key string) (command.Command, bool) {
	if cmd, ok := r.exact[key]; ok {
		return cmd, true
	}
	if cmd, ok := r.longestPrefix(key); ok {
		return cmd, true
	}
	if cmd, ok := r.rangeContaining(key); ok {
		return cmd, true
	}
	return nil, false
}

func (r *Registry) longestPrefix(key string) (command.Command, bool) {
	var best *prefixEntry
	for i := range r.prefix {
		p := &r.prefix[i]
		if strings.HasPrefix(key, p.prefix) {
			if best == nil || len(p.prefix) > len(best.prefix) {
				best = p
			}
		}
	}
	if best == nil {
		return nil, false
	}
	return best.cmd, true
}

func (r *Registry) rangeContaining(key string) (command.Command, bool) {
	// r.ranges is sorted by lo and non-overlapping, so a linear scan is
	// simplest and fast enough for the typical handful of registrations;
	// a binary search would only help registries with hundreds of ranges.
	for _, rg := range r.ranges {
		if key >= rg.lo && key < rg.hi {
			return rg.cmd, true
		}
	}
	return nil, false
}

// Entries returns every local registration (not including chained
// registries), for diagnostics such as cmd/panectl's "inspect" subcommand.
// The slice is freshly built on each call and safe for the caller to sort
// or filter.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.exact)+len(r.ranges)+len(r.prefix))
	for k, c := range r.exact {
		out = append(out, Entry{Kind: KindExact, Key: k, Cmd: c})
	}
	for _, rg := range r.ranges {
		out = append(out, Entry{Kind: KindRange, Lo: rg.lo, Hi: rg.hi, Cmd: rg.cmd})
	}
	for _, p := range r.prefix {
		out = append(out, Entry{Kind: KindPrefix, Key: p.prefix, Cmd: p.cmd})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return entryKeyOf(out[i]) < entryKeyOf(out[j])
	})
	return out
}

func entryKeyOf(e Entry) string {
	if e.Kind == KindRange {
		return e.Lo
	}
	return e.Key
}

func rangesOverlap(aLo, aHi, bLo, bHi string) bool {
	return aLo < bHi && bLo < aHi
}
