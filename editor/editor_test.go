package editor_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/panekit/command"
	"github.com/joshuapare/panekit/editor"
	"github.com/joshuapare/panekit/pane"
)

func TestGlobalSetAndGetCommand(t *testing.T) {
	r := editor.New(editor.Options{})
	echoed := command.Func(func(ctx *command.Context) command.Status { return 1 })

	status := r.Pane().Call(&command.Context{Key: "global-set-command", Str: "my-cmd", Comm: echoed})
	require.Equal(t, command.Status(1), status)

	ctx := &command.Context{Key: "global-get-command", Str: "my-cmd"}
	status = r.Pane().Call(ctx)
	require.Equal(t, command.Status(1), status)
	require.NotNil(t, ctx.Comm2)
}

func TestGlobalSetAttrOnHome(t *testing.T) {
	r := editor.New(editor.Options{})
	target := pane.Register(r.Pane(), 0, nil, nil)

	status := r.Pane().Call(&command.Context{
		Key: "global-set-attr", Home: target, Str: "name", Str2: "value",
	})
	require.Equal(t, command.Status(1), status)

	v, ok := target.Attrs().Get("name")
	require.True(t, ok)
	require.Equal(t, "value", v)
}

func TestGlobalMulticallStripsPrefixAndDispatches(t *testing.T) {
	r := editor.New(editor.Options{})
	called := false
	require.NoError(t, r.SetCommand("real-key", command.Func(func(ctx *command.Context) command.Status {
		called = true
		return 1
	})))

	status := r.Pane().Call(&command.Context{Key: "global-multicall-real-key"})
	require.Equal(t, command.Status(1), status)
	require.True(t, called)
}

func TestEditorOnIdleQueuesThenOnIdleDrains(t *testing.T) {
	r := editor.New(editor.Options{})
	ran := false
	cb := command.Func(func(ctx *command.Context) command.Status {
		require.Equal(t, "idle-callback", ctx.Key)
		ran = true
		return 1
	})

	status := r.Pane().Call(&command.Context{Key: "editor-on-idle", Focus: r.Pane(), Comm2: cb})
	require.Equal(t, command.Status(1), status)
	require.Equal(t, 1, r.PendingIdleCallbacks())
	require.False(t, ran)

	r.OnIdle()
	require.True(t, ran)
	require.Equal(t, 0, r.PendingIdleCallbacks())
}

func TestAttachAutoLoadsBuiltinAndRetries(t *testing.T) {
	loadedOnto := (*editor.Root)(nil)
	r := editor.New(editor.Options{
		Builtins: map[string]editor.ModuleInit{
			"mode-emacs": func(root *editor.Root) error {
				loadedOnto = root
				return root.SetCommand("attach-mode-emacs", command.Func(func(ctx *command.Context) command.Status {
					return 1
				}))
			},
		},
	})

	status := r.Pane().Call(&command.Context{Key: "attach-mode-emacs"})
	require.Equal(t, command.Status(1), status)
	require.Equal(t, r, loadedOnto)
}

func TestRequestAndCallNotifyGlobal(t *testing.T) {
	r := editor.New(editor.Options{})
	observer := pane.Register(r.Pane(), 0, command.Func(func(ctx *command.Context) command.Status {
		return 1
	}), nil)

	status := r.Pane().Call(&command.Context{Key: "Request:Notify:global-thing", Home: observer})
	require.Equal(t, command.Status(1), status)

	status = r.Pane().Call(&command.Context{Key: "Call:Notify:global-thing", Num: 7})
	require.Equal(t, command.Status(1), status)
}

func TestClosePaneDefersToFreelistUntilOnIdle(t *testing.T) {
	r := editor.New(editor.Options{})
	p := pane.Register(r.Pane(), 0, nil, nil)

	r.ClosePane(p)
	require.True(t, p.Closed())

	r.OnIdle() // must not panic draining the freelist
}

func TestEnableLoggingLogsRegistryConflictAtDebug(t *testing.T) {
	var buf bytes.Buffer
	editor.EnableLogging(editor.LoggingOptions{Writer: &buf, Level: slog.LevelDebug})
	defer editor.EnableLogging(editor.LoggingOptions{Writer: &bytes.Buffer{}, Level: slog.LevelError})

	r := editor.New(editor.Options{})
	echo := command.Func(func(ctx *command.Context) command.Status { return 1 })
	require.NoError(t, r.SetCommand("dup-key", echo))

	status := r.Pane().Call(&command.Context{Key: "global-set-command", Str: "dup-key", Comm: echo})
	require.Equal(t, command.Econflict, status)
	require.Contains(t, buf.String(), "registry conflict")
}
