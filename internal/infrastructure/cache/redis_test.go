package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOpenRedis_Success(t *testing.T) {
	s := miniredis.RunT(t)

	core, logs := observer.New(zap.InfoLevel)
	c, err := OpenRedis(context.Background(), s.Addr(), 2, zap.New(core))
	if err != nil {
		t.Fatalf("OpenRedis returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 2 {
		t.Fatalf("client DB = %d, want 2", got)
	}
	if logs.FilterMessage("redis: connected").Len() != 1 {
		t.Fatalf("expected one connect log, got %v", logs.All())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.Set(ctx, "idemp:probe", "v", time.Minute).Err(); err != nil {
		t.Fatalf("SET err: %v", err)
	}
	if ttl := s.TTL("idemp:probe"); ttl != time.Minute {
		t.Fatalf("TTL = %v, want 1m", ttl)
	}
}

func TestOpenRedis_Failure(t *testing.T) {
	// unresolvable host fails the dial without waiting out the timeout
	_, err := OpenRedis(context.Background(), "not-a-real-host:6379", 0, zap.NewNop())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not-a-real-host:6379") {
		t.Fatalf("error should name the address: %v", err)
	}
}

func TestOpenRedis_CancelledContext(t *testing.T) {
	s := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := OpenRedis(ctx, s.Addr(), 0, zap.NewNop()); err == nil {
		t.Fatal("expected error for a cancelled context")
	}
}
