package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfirmationRunsCommitOnce(t *testing.T) {
	svc := NewConfirmationService(time.Minute, testLogger())
	ctx := context.Background()

	calls := 0
	pending := svc.Request(ctx, "Hapus Santri?", "Yakin?", func(context.Context) error {
		calls++
		return nil
	})

	current, ok := svc.Pending(ctx)
	require.True(t, ok)
	require.Equal(t, pending, current)

	require.NoError(t, svc.Confirm(ctx, pending.ID))
	require.ErrorIs(t, svc.Confirm(ctx, pending.ID), ErrConfirmationNotFound)
	require.Equal(t, 1, calls)

	_, ok = svc.Pending(ctx)
	require.False(t, ok)
}

func TestConfirmationNewRequestReplacesPending(t *testing.T) {
	svc := NewConfirmationService(time.Minute, testLogger())
	ctx := context.Background()

	first := svc.Request(ctx, "Hapus Kelas?", "", func(context.Context) error {
		t.Fatal("replaced confirmation must not commit")
		return nil
	})
	second := svc.Request(ctx, "Hapus Santri?", "", func(context.Context) error { return nil })

	require.ErrorIs(t, svc.Confirm(ctx, first.ID), ErrConfirmationNotFound)
	require.NoError(t, svc.Confirm(ctx, second.ID))
}

func TestConfirmationPropagatesCommitError(t *testing.T) {
	svc := NewConfirmationService(time.Minute, testLogger())
	ctx := context.Background()

	boom := errors.New("boom")
	pending := svc.Request(ctx, "Reset?", "", func(context.Context) error { return boom })
	require.ErrorIs(t, svc.Confirm(ctx, pending.ID), boom)
}

func TestConfirmationExpires(t *testing.T) {
	svc := NewConfirmationService(30*time.Millisecond, testLogger())
	ctx := context.Background()

	pending := svc.Request(ctx, "Hapus Kelas?", "", func(context.Context) error { return nil })
	require.Eventually(t, func() bool {
		_, ok := svc.Pending(ctx)
		return !ok
	}, time.Second, 5*time.Millisecond)
	require.ErrorIs(t, svc.Cancel(ctx, pending.ID), ErrConfirmationNotFound)
}
