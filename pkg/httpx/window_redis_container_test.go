package httpx_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newRedisContainerClient(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

// TestRedisWindow_ConcurrentReplicas drives one key from two windows, as two
// replicas would, and checks no hit is lost.
func TestRedisWindow_ConcurrentReplicas(t *testing.T) {
	client := newRedisContainerClient(t)
	ctx := context.Background()

	replicas := []*httpx.RedisWindow{
		httpx.NewRedisWindow(client, "it:"),
		httpx.NewRedisWindow(client, "it:"),
	}

	const perReplica = 50
	var wg sync.WaitGroup
	for _, w := range replicas {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perReplica {
				_, err := w.Hit(ctx, "10.0.0.1:/api/pokemon", time.Minute)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	hit, err := replicas[0].Hit(ctx, "10.0.0.1:/api/pokemon", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(2*perReplica+1), hit.Count)

	ttl, err := client.PTTL(ctx, "it:10.0.0.1:/api/pokemon").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 50*time.Second)
}
