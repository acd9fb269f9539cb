package middleware_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("redis container skipped in short mode")
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
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	return redis.NewClient(&redis.Options{Addr: addr})
}

func TestRedisStorage(t *testing.T) {
	client := startRedis(t)
	store := middleware.NewRedisStorage(client, "test:")
	t.Cleanup(func() { _ = store.Close() })

	val, err := store.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, store.Set("k1", []byte("v1"), time.Minute))
	require.NoError(t, store.Set("k2", []byte("v2"), time.Minute))

	val, err = store.Get("k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), val)

	require.NoError(t, store.Delete("k1"))
	val, err = store.Get("k1")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, store.Reset())
	val, err = store.Get("k2")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestRateLimit_SharedRedisWindow(t *testing.T) {
	client := startRedis(t)
	store := middleware.NewRedisStorage(client, "limiter:")

	// Two apps stand in for two replicas behind one Redis.
	newApp := func() *fiber.App {
		app := fiber.New()
		app.Get("/", middleware.RateLimit("api", 2, store), func(c *fiber.Ctx) error { return c.SendString("ok") })
		return app
	}
	first, second := newApp(), newApp()

	resp := testutil.MakeJSONRequest(t, first, http.MethodGet, "/", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = testutil.MakeJSONRequest(t, second, http.MethodGet, "/", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutil.MakeJSONRequest(t, first, http.MethodGet, "/", "", nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
