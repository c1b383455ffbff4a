package doc

import "github.com/joshuapare/panekit/command"

// Handlers adapts a Document's Go-native methods into the string-keyed
// command.Command entries the rest of the kernel actually dispatches to, so
// a document module can register with a registry.Registry via the usual
// KeyAdd calls (spec.md §4.5: "Step/move operations are implemented by the
// document through the command protocol"). Unlike hand-writing each
// closure, this keeps the protocol's argument-unpacking logic in one place
// shared by every document module.
//
// Every handler except doc:same-file expects ctx.Mark1 to hold a MarkRef
// (concretely a *mark.Mark); a caller that passes anything else gets
// command.Enoarg.
func Handlers(d Document) map[string]command.Command {
	h := map[string]command.Command{
		KeyStep:    stepHandler(d),
		KeySetRef:  setRefHandler(d),
		KeyGetAttr: getAttrHandler(d),
	}
	if sf, ok := d.(SameFiler); ok {
		h[KeySameFile] = sameFileHandler(sf)
	}
	if rs, ok := d.(RefSharer); ok {
		h[KeySharesRef] = sharesRefHandler(rs)
	}
	return h
}

func markArg(ctx *command.Context) (MarkRef, command.Status) {
	m, ok := ctx.Mark1.(MarkRef)
	if !ok || m == nil {
		return nil, command.Enoarg
	}
	return m, 0
}

// stepHandler implements doc:step: "{ mark, num (1=forward,0=backward),
// num2 (1=move) } -> char".
func stepHandler(d Stepper) command.Command {
	return command.Func(func(ctx *command.Context) command.Status {
		m, bad := markArg(ctx)
		if bad != 0 {
			return bad
		}
		forward := ctx.Num != 0
		move := ctx.Num2 != 0
		ch, ok := d.Step(m, forward, move)
		if !ok {
			return command.Status(int(WEOF))
		}
		return command.Status(ch)
	})
}

// setRefHandler implements doc:set-ref: "{ mark, num (1=start,0=end) }".
func setRefHandler(d RefSetter) command.Command {
	return command.Func(func(ctx *command.Context) command.Status {
		m, bad := markArg(ctx)
		if bad != 0 {
			return bad
		}
		d.SetRef(m, ctx.Num != 0)
		return 1
	})
}

// getAttrHandler implements doc:get-attr: "{ mark, str=attr } -> string
// attribute". The returned string is placed into ctx.Str2 so callers can
// read it after Call returns without a separate channel.
func getAttrHandler(d AttrGetter) command.Command {
	return command.Func(func(ctx *command.Context) command.Status {
		m, bad := markArg(ctx)
		if bad != 0 {
			return bad
		}
		if ctx.Str == "" {
			return command.Enoarg
		}
		val, ok := d.GetAttr(m, ctx.Str)
		if !ok {
			return command.NotHandled
		}
		ctx.Str2 = val
		return 1
	})
}

// sameFileHandler implements doc:same-file: "{ str=candidate path }".
func sameFileHandler(d SameFiler) command.Command {
	return command.Func(func(ctx *command.Context) command.Status {
		if ctx.Str == "" {
			return command.Enoarg
		}
		if d.SameFile(ctx.Str) {
			return 1
		}
		return command.NotHandled
	})
}

func sharesRefHandler(d RefSharer) command.Command {
	return command.Func(func(ctx *command.Context) command.Status {
		a, bad := markArg(ctx)
		if bad != 0 {
			return bad
		}
		b, ok := ctx.Mark2.(MarkRef)
		if !ok || b == nil {
			return command.Enoarg
		}
		if d.SharesRef(a, b) {
			return 1
		}
		return command.NotHandled
	})
}
