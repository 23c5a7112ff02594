// SPDX-License-Identifier: Apache-2.0

package glcd

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wundergraph/go-glcd/gfx"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	env := newTestEnv(t, 16*1024)
	id := mustAdd(t, env.m, NewObject(rect(1, 1, 3, 3, gfx.Red)))
	require.NoError(t, env.m.Remove(id, true))
	require.Contains(t, buf.String(), "object added")
	require.Contains(t, buf.String(), "object removed")

	q := NewQueue(env.m, 1)
	require.NoError(t, q.Post(RemoveIntent{}))
	require.ErrorIs(t, q.Post(RemoveIntent{}), ErrQueueFull)
	require.Contains(t, buf.String(), "level=WARN")

	SetLogger(nil)
	buf.Reset()
	mustAdd(t, env.m, NewObject(rect(1, 1, 3, 3, gfx.Red)))
	require.Empty(t, buf.String())
	require.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
