package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"

	// dockerEnv switches the suite from an in-process Redis to a real container.
	dockerEnv = "TICTACTOE_DOCKER_TESTS"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
	// Mini is set when the in-process Redis backs Storage.
	Mini *miniredis.Miniredis
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	st := &Suite{
		T:      t,
		Logger: logger,
	}

	if os.Getenv(dockerEnv) == "" {
		st.Mini = miniredis.RunT(t)
		st.Storage = redis.NewClient(&redis.Options{
			Addr: st.Mini.Addr(),
		})
	} else {
		st.Storage = runRedisContainer(ctx, t)
	}

	t.Cleanup(func() {
		_ = st.Storage.Close()
	})

	if err := st.Storage.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, st
}

func runRedisContainer(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
		Env:        []string{},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	// never returns error
	_ = resource.Expire(expireDuration)

	redisHost := resource.GetHostPort(redisPort)

	// the server inside the container might not accept connections yet
	pool.MaxWait = maxWaitDuration

	var redisClient *redis.Client
	if err = pool.Retry(func() error {
		redisClient = redis.NewClient(&redis.Options{
			Addr: redisHost,
		})
		return redisClient.Ping(ctx).Err()
	}); err != nil {
		if err = pool.Purge(resource); err != nil {
			t.Fatalf("could not purge resource: %v", err)
		}

		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		t.Helper()

		if err = pool.Purge(resource); err != nil {
			t.Fatalf("could not purge resource: %v", err)
		}
	})

	return redisClient
}

// FastForward - moves Redis time forward so keys with a TTL expire.
func (that *Suite) FastForward(ctx context.Context, key string, d time.Duration) {
	that.Helper()

	if that.Mini != nil {
		that.Mini.FastForward(d)
		return
	}

	// a real server cannot travel in time, expire the key directly
	if err := that.Storage.Expire(ctx, key, time.Millisecond).Err(); err != nil {
		that.Fatalf("could not expire key: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
}
