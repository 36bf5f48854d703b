//go:build integration

package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/Nomina-api/internal/infrastructure/notify"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	url, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestDispatcherAndPool_DeliverTicket(t *testing.T) {
	rdb := setupRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{}
	pool := notify.NewWorkerPool(rdb, "jobs:tickets", 2, sender, zerolog.Nop())
	pool.Start(ctx)

	require.NoError(t, notify.NewDispatcher(rdb, "jobs:tickets").NotifySale(ctx, ticket()))

	assert.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return len(sender.folio) == 1
	}, 10*time.Second, 50*time.Millisecond)

	cancel()
	pool.Wait()
}

func TestWorkerPool_RetriesThenDeadLetters(t *testing.T) {
	rdb := setupRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{err: errors.New("smtp caído")}
	pool := notify.NewWorkerPool(rdb, "jobs:tickets", 1, sender, zerolog.Nop())
	pool.Start(ctx)

	require.NoError(t, notify.NewDispatcher(rdb, "jobs:tickets").NotifySale(ctx, ticket()))

	assert.Eventually(t, func() bool {
		n, err := notify.DLQLength(ctx, rdb, "jobs:tickets")
		return err == nil && n == 1
	}, 15*time.Second, 100*time.Millisecond)

	sender.mu.Lock()
	assert.Len(t, sender.folio, notify.MaxAttempts)
	sender.mu.Unlock()

	cancel()
	pool.Wait()
}
