package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type fakeSource struct {
	companies map[uuid.UUID]*uuid.UUID
	calls     int
	err       error
}

func (f *fakeSource) CompanyIDForUser(_ context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.companies[userID], nil
}

func TestCompanyCacheFallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	user := uuid.New()
	company := uuid.New()
	source := &fakeSource{companies: map[uuid.UUID]*uuid.UUID{user: &company}}
	c := NewCompanyCache(client, source, time.Minute, zap.NewNop())

	got, err := c.CompanyIDForUser(context.Background(), user)
	if err != nil {
		t.Fatalf("CompanyIDForUser: %v", err)
	}
	if got == nil || *got != company {
		t.Errorf("Expected company %s, got %v", company, got)
	}
	if source.calls != 1 {
		t.Errorf("Expected one source call, got %d", source.calls)
	}
}

func TestCompanyCacheSourceError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	boom := errors.New("boom")
	c := NewCompanyCache(client, &fakeSource{err: boom}, time.Minute, zap.NewNop())

	_, err := c.CompanyIDForUser(context.Background(), uuid.New())
	if !errors.Is(err, boom) {
		t.Errorf("Expected source error, got %v", err)
	}
}

func setupRedis(t *testing.T) *redis.Client {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCompanyCacheServesFromRedis(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	user := uuid.New()
	loner := uuid.New()
	company := uuid.New()
	source := &fakeSource{companies: map[uuid.UUID]*uuid.UUID{user: &company}}
	c := NewCompanyCache(client, source, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		got, err := c.CompanyIDForUser(ctx, user)
		if err != nil {
			t.Fatalf("CompanyIDForUser: %v", err)
		}
		if got == nil || *got != company {
			t.Errorf("Expected company %s, got %v", company, got)
		}
	}
	if source.calls != 1 {
		t.Errorf("Expected one source call, got %d", source.calls)
	}
	ttl, err := client.TTL(ctx, companyKey(user)).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("Expected cached entries to expire within a minute, got %s", ttl)
	}

	for i := 0; i < 2; i++ {
		got, err := c.CompanyIDForUser(ctx, loner)
		if err != nil {
			t.Fatalf("CompanyIDForUser: %v", err)
		}
		if got != nil {
			t.Errorf("Expected no company, got %s", got)
		}
	}
	if source.calls != 2 {
		t.Errorf("Users without a company should be cached too, got %d calls", source.calls)
	}
}
