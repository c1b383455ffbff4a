package pane

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/panekit/command"
)

func TestKeyHandleWalksUpUntilHandled(t *testing.T) {
	var seenHomes []ID
	parentRec := command.Func(func(ctx *command.Context) command.Status {
		home := ctx.Home.(*Pane)
		seenHomes = append(seenHomes, home.ID())
		return 1
	})
	childRec := command.Func(func(ctx *command.Context) command.Status {
		home := ctx.Home.(*Pane)
		seenHomes = append(seenHomes, home.ID())
		return command.NotHandled
	})

	root := Register(nil, 0, parentRec, nil)
	child := Register(root, 0, childRec, nil)

	status := KeyHandle(child, &command.Context{Key: "some-key", Focus: child})
	require.Equal(t, command.Status(1), status)
	require.Equal(t, []ID{child.ID(), root.ID()}, seenHomes)
}

func TestKeyHandleStopsOnFirstErrorWithoutAscending(t *testing.T) {
	parentCalled := false
	parentRec := command.Func(func(ctx *command.Context) command.Status {
		parentCalled = true
		return 1
	})
	childRec := command.Func(func(ctx *command.Context) command.Status {
		return command.Efail
	})

	root := Register(nil, 0, parentRec, nil)
	child := Register(root, 0, childRec, nil)

	status := KeyHandle(child, &command.Context{Key: "some-key", Focus: child})
	require.Equal(t, command.Efail, status)
	require.False(t, parentCalled)
}

func TestKeyHandleReturnsNotHandledAtRoot(t *testing.T) {
	root := Register(nil, 0, nil, nil)
	status := KeyHandle(root, &command.Context{Key: "whatever", Focus: root})
	require.Equal(t, command.NotHandled, status)
}
