package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNotificationPushExpiresAfterTTL(t *testing.T) {
	svc := NewNotificationService(NotificationConfig{TTL: 50 * time.Millisecond}, testLogger())
	t.Cleanup(svc.Close)

	pushed, err := svc.Push(context.Background(), "Penilaian berhasil disimpan!", false)
	require.NoError(t, err)
	require.NotEmpty(t, pushed.ID)
	require.Equal(t, pushed.CreatedAt.Add(50*time.Millisecond), pushed.ExpiresAt)

	require.Len(t, svc.List(context.Background()), 1)
	require.Eventually(t, func() bool {
		return len(svc.List(context.Background())) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNotificationDismissCancelsRemoval(t *testing.T) {
	svc := NewNotificationService(NotificationConfig{TTL: time.Minute}, testLogger())
	t.Cleanup(svc.Close)
	ctx := context.Background()

	first, err := svc.Push(ctx, "satu", false)
	require.NoError(t, err)
	second, err := svc.Push(ctx, "dua", true)
	require.NoError(t, err)

	require.NoError(t, svc.Dismiss(ctx, first.ID))
	require.ErrorIs(t, svc.Dismiss(ctx, first.ID), ErrNotificationNotFound)

	active := svc.List(ctx)
	require.Len(t, active, 1)
	require.Equal(t, second.ID, active[0].ID)
	require.True(t, active[0].IsError)
}

func TestNotificationPushSanitizesMessage(t *testing.T) {
	svc := NewNotificationService(NotificationConfig{}, testLogger())
	t.Cleanup(svc.Close)

	pushed, err := svc.Push(context.Background(), `<b>Header "Nama Santri"</b>`, true)
	require.NoError(t, err)
	require.Equal(t, `Header "Nama Santri"`, pushed.Message)

	_, err = svc.Push(context.Background(), "<script></script>", false)
	require.ErrorIs(t, err, ErrNotificationEmpty)
}

func TestNotificationSubscribersReceivePushes(t *testing.T) {
	svc := NewNotificationService(NotificationConfig{}, testLogger())
	t.Cleanup(svc.Close)

	stream, cancel := svc.Subscribe()
	pushed, err := svc.Push(context.Background(), "Santri berhasil dihapus.", false)
	require.NoError(t, err)

	select {
	case received := <-stream:
		require.Equal(t, pushed.ID, received.ID)
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
	}

	cancel()
	cancel()
	_, open := <-stream
	require.False(t, open)
}

func TestNotificationMirrorsAcrossNodesViaRedis(t *testing.T) {
	server := miniredis.RunT(t)
	newClient := func() *redis.Client {
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		return client
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := NotificationConfig{TTL: time.Minute, Channel: "test:notifications"}

	cfg.Redis = newClient()
	nodeA := NewNotificationService(cfg, testLogger())
	t.Cleanup(nodeA.Close)

	cfg.Redis = newClient()
	nodeB := NewNotificationService(cfg, testLogger())
	t.Cleanup(nodeB.Close)
	nodeB.Start(ctx)

	require.Eventually(t, func() bool {
		return len(server.PubSubChannels("test:*")) == 1
	}, time.Second, 10*time.Millisecond)

	pushed, err := nodeA.Push(ctx, "Kelas baru berhasil ditambahkan!", false)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		active := nodeB.List(ctx)
		return len(active) == 1 && active[0].ID == pushed.ID
	}, time.Second, 10*time.Millisecond)
	require.Len(t, nodeA.List(ctx), 1)
}
