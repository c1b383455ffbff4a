package pane

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/panekit/command"
)

// recorder is a command.Command that remembers every call it receives, used
// to assert handler-invocation order and counts without a full module.
type recorder struct {
	calls []command.Context
	ret   command.Status
}

func (r *recorder) Call(ctx *command.Context) command.Status {
	r.calls = append(r.calls, *ctx)
	return r.ret
}

func (r *recorder) keys() []string {
	keys := make([]string, len(r.calls))
	for i, c := range r.calls {
		keys[i] = c.Key
	}
	return keys
}

func TestRegisterLinksAtHeadAndSetsFocus(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	a := Register(root, 0, nil, nil)
	require.Equal(t, root, a.Parent())
	require.Equal(t, a, root.Focus())

	b := Register(root, 0, nil, nil)
	require.Equal(t, []*Pane{b, a}, root.Children())
	require.Equal(t, a, root.Focus(), "focus only auto-assigns to the first child")
}

func TestChildListMembershipAndAcyclicity(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	a := Register(root, 0, nil, nil)
	b := Register(a, 0, nil, nil)

	require.Contains(t, root.Children(), a)
	require.Contains(t, a.Children(), b)
	require.NotContains(t, root.Children(), b, "grandchild is not a direct child")

	seen := map[*Pane]bool{}
	var walk func(p *Pane)
	walk = func(p *Pane) {
		require.False(t, seen[p], "tree must be acyclic")
		seen[p] = true
		for _, k := range p.Children() {
			walk(k)
		}
	}
	walk(root)
	require.Len(t, seen, 3)
}

func TestClosedPaneUnreachableAndHandlerNotReinvoked(t *testing.T) {
	rec := &recorder{}
	root := Register(nil, 0, nil, nil)
	a := Register(root, 0, rec, nil)

	a.Close()
	require.True(t, a.Closed())
	require.NotContains(t, root.Children(), a)
	require.Nil(t, root.Focus())

	callsAfterClose := len(rec.calls)
	a.Close() // idempotent: double close is a no-op
	require.Len(t, rec.calls, callsAfterClose)
}

func TestCloseIsIdempotent(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	a := Register(root, 0, nil, nil)
	a.Close()
	require.NotPanics(t, func() { a.Close() })
}

func TestDamagedZeroIsNoOp(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	before := root.Damage()
	root.Damaged(0)
	require.Equal(t, before, root.Damage())
}

func TestDamagedPropagatesChildBitUpToFirstAlreadyDamagedAncestor(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	mid := Register(root, 0, nil, nil)
	leaf := Register(mid, 0, nil, nil)

	leaf.Damaged(DamagedContent)
	require.NotZero(t, leaf.Damage()&DamagedContent)
	require.NotZero(t, mid.Damage()&DamagedChild)
	require.NotZero(t, root.Damage()&DamagedChild)

	// A second, unrelated leaf damaging mid should not need to re-walk past
	// mid since mid already carries DamagedChild.
	leaf2 := Register(mid, 0, nil, nil)
	rootDamageBefore := root.Damage()
	leaf2.Damaged(DamagedCursor)
	require.Equal(t, rootDamageBefore, root.Damage())
}

func TestNotifierEdgeListSymmetry(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	source := Register(root, 0, nil, nil)
	observer := Register(root, 0, nil, nil)

	e := &Edge{Source: source, Target: observer, Event: "E"}
	source.AddNotifiee(e)
	observer.AddNotifier(e)

	require.Contains(t, source.Notifiees(), e)
	require.Contains(t, observer.Notifiers(), e)

	source.RemoveNotifiee(e)
	observer.RemoveNotifier(e)
	require.NotContains(t, source.Notifiees(), e)
	require.NotContains(t, observer.Notifiers(), e)
}

func TestCloseDeliversExactlyOneNotifyCloseToObserver(t *testing.T) {
	obsRec := &recorder{}
	root := Register(nil, 0, nil, nil)
	source := Register(root, 0, nil, nil)
	observer := Register(root, 0, obsRec, nil)

	e := &Edge{Source: source, Target: observer, Event: "E"}
	source.AddNotifiee(e)
	observer.AddNotifier(e)

	source.Close()

	require.Len(t, obsRec.calls, 1)
	require.Equal(t, "Notify:Close", obsRec.calls[0].Key)
	require.Equal(t, source, obsRec.calls[0].Focus)
	require.Empty(t, observer.Notifiers())
	require.Empty(t, source.Notifiees())
}

func TestRefreshClearsNeedCallDamage(t *testing.T) {
	rec := &recorder{ret: 1}
	root := Register(nil, 0, nil, nil)
	a := Register(root, 0, rec, nil)
	a.Damaged(DamagedContent)

	Refresh(root)

	require.Zero(t, a.Damage()&DamagedNeedCall, "no DamagedNeedCall bit should remain after Refresh")
}

func TestRefreshOrdersHandlerCallsByAscendingZThenGroupsShareAbsZ(t *testing.T) {
	rootRec := &recorder{ret: 1}
	c1Rec := &recorder{ret: 1}
	c2Rec := &recorder{ret: 1}
	c3Rec := &recorder{ret: 1}

	root := Register(nil, 0, rootRec, nil)
	root.Damaged(DamagedContent)
	c1 := Register(root, 0, c1Rec, nil)
	c2 := Register(root, 1, c2Rec, nil)
	c3 := Register(root, 0, c3Rec, nil)
	c1.Damaged(DamagedContent)
	c2.Damaged(DamagedContent)
	c3.Damaged(DamagedContent)

	Refresh(root)

	require.Equal(t, []string{"Refresh"}, rootRec.keys())
	require.Equal(t, []string{"Refresh"}, c1Rec.keys())
	require.Equal(t, []string{"Refresh"}, c2Rec.keys())
	require.Equal(t, []string{"Refresh"}, c3Rec.keys())

	require.Equal(t, c1.AbsZ(), c3.AbsZ(), "siblings sharing local z share abs_z")
	require.Greater(t, c2.AbsZ(), c1.AbsZHi(), "the higher-z group starts above the lower group's peak")
	require.Greater(t, c2.AbsZ(), c3.AbsZHi())
}

func TestRefreshSkipsClosedSubtree(t *testing.T) {
	rec := &recorder{ret: 1}
	root := Register(nil, 0, nil, nil)
	a := Register(root, 0, rec, nil)
	a.Close()

	require.NotPanics(t, func() { Refresh(root) })
	require.Empty(t, rec.calls, "a closed pane's handler must not be invoked by Refresh")
}

func TestRefreshAssignsFocusToFirstChildWhenUnset(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	a := Register(root, 0, nil, nil)
	root.SetFocus(nil)
	require.Nil(t, root.Focus())

	Refresh(root)
	require.Equal(t, a, root.Focus())
}

func TestAbsXYSumsOverParentChain(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	root.Resize(0, 0, 100, 100)
	a := Register(root, 0, nil, nil)
	a.Resize(10, 20, 50, 50)
	b := Register(a, 0, nil, nil)
	b.Resize(5, 5, 10, 10)

	x, y := b.AbsXY()
	require.Equal(t, 15, x)
	require.Equal(t, 25, y)

	rx, ry := b.RelXY(x, y)
	require.Equal(t, 0, rx)
	require.Equal(t, 0, ry)
}

func TestMaskedShrinksToUnmaskedPrefix(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	root.Resize(0, 0, 100, 100)
	overlay := Register(root, 1, nil, nil)
	overlay.Resize(5, 0, 95, 100)

	w, h, ok := root.Masked(0, 0, 0, 10, 100)
	require.True(t, ok)
	require.Equal(t, 5, w)
	require.Equal(t, 100, h)
}

func TestMaskedFullyCoveredReturnsNotOK(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	root.Resize(0, 0, 100, 100)
	overlay := Register(root, 1, nil, nil)
	overlay.Resize(0, 0, 100, 100)

	_, _, ok := root.Masked(0, 0, 0, 10, 10)
	require.False(t, ok)
}

func TestSetFocusRejectsNonChild(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	other := Register(nil, 0, nil, nil)
	require.Panics(t, func() { root.SetFocus(other) })
}
