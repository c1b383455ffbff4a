package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCallDispatchesDocLineNew(t *testing.T) {
	callStr = "hello"
	callNum, callNum2 = 0, 0
	defer func() { callStr, callNum, callNum2 = "", 0, 0 }()

	err := runCall("doc-line-new")
	require.NoError(t, err)
}

// TestRunCallUnknownKeyIsNotAnError reflects the dispatch protocol itself:
// a miss is NotHandled (0), not a command.Status error, so runCall reports
// success with status 0 rather than failing.
func TestRunCallUnknownKeyIsNotAnError(t *testing.T) {
	callStr, callNum, callNum2 = "", 0, 0

	err := runCall("no-such-command")
	require.NoError(t, err)
}

func TestRunInspectDoesNotError(t *testing.T) {
	prevJSON := jsonOut
	jsonOut = false
	defer func() { jsonOut = prevJSON }()

	require.NoError(t, runInspect())
}

func TestRunInspectJSONDoesNotError(t *testing.T) {
	prevJSON := jsonOut
	jsonOut = true
	defer func() { jsonOut = prevJSON }()

	require.NoError(t, runInspect())
}
