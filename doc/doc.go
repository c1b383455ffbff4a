// Package doc defines the document contract: the protocol a concrete
// document module (a text buffer, a directory listing, ...) must honor so
// the pane tree and mark chain can interoperate with it, per spec.md §3
// "Document" and §4.5 "Marks and documents".
//
// Documents are "a protocol, not a fixed type" (spec.md §3): this package
// never implements one. It only names the doc: command keys, the WEOF
// sentinel, and the small Go interfaces a document module can implement
// natively so Handlers can adapt them into the string-keyed command ABI
// every other pane in the tree actually calls. Splitting the contract into
// narrow single-purpose interfaces (Stepper / RefSetter / AttrGetter)
// mirrors hive/dirty/interface.go's DirtyTracker / FlushableTracker split.
package doc

// The well-known doc: command keys, part of the stable ABI spec.md §6
// reserves under the "doc:" prefix.
const (
	KeyStep      = "doc:step"
	KeySetRef    = "doc:set-ref"
	KeyGetAttr   = "doc:get-attr"
	KeyLoadFile  = "doc:load-file"
	KeySameFile  = "doc:same-file"
	KeySharesRef = "doc:shares-ref"

	// NotifyReplaced is the notification event name a document emits on its
	// notifiees when its content changes out from under existing marks
	// (spec.md §4.5 "doc:replaced (notification)").
	NotifyReplaced = "Notify:Replaced"
)

// WEOF is the sentinel rune Stepper.Step returns at either end of a
// document, matching spec.md §4.5's "returns next character (or WEOF)".
const WEOF rune = -1

// Stepper is the minimal capability for walking a document one character at
// a time from a mark, optionally advancing the mark as it goes.
type Stepper interface {
	// Step returns the next (forward=true) or previous (forward=false)
	// character relative to m. If move is true, m is advanced past the
	// returned character. At either end of the document, Step returns
	// (WEOF, false) and never advances m past the end.
	Step(m MarkRef, forward, move bool) (rune, bool)
}

// RefSetter positions a mark at one of the document's canonical ends.
type RefSetter interface {
	// SetRef moves m to the start of the document (start=true) or the end
	// (start=false).
	SetRef(m MarkRef, start bool)
}

// AttrGetter returns a string attribute of the document at a mark's
// position, e.g. a directory listing's "name", "size", "perms" columns
// (spec.md §4.5).
type AttrGetter interface {
	GetAttr(m MarkRef, attr string) (string, bool)
}

// SameFiler reports whether this document represents the same underlying
// file/resource some candidate identifier (e.g. a path) names, for
// doc:same-file.
type SameFiler interface {
	SameFile(candidate string) bool
}

// RefSharer reports whether two marks of this document occupy the same
// position ("compare equal by identity", spec.md §4.5 doc:shares-ref).
type RefSharer interface {
	SharesRef(a, b MarkRef) bool
}

// Document is the full contract a concrete document module honors. A
// module may implement a subset and adapt only that subset with Handlers;
// GetAttr/SameFile/SharesRef are frequently optional in practice, which is
// why they are not folded into a single monolithic interface.
type Document interface {
	Stepper
	RefSetter
	AttrGetter
}

// MarkRef is the narrow view of a mark.Mark a document needs: its opaque
// Ref payload. It is declared here (rather than importing mark.Mark
// directly) so doc stays a pure contract package with no dependency on the
// mark chain's bookkeeping — a document only ever needs to read and write
// the Ref it owns.
type MarkRef interface {
	Ref() any
	SetRef(any)
}
