package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestThrottle(t *testing.T) (*LoginThrottle, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewLoginThrottle(client), mr
}

func TestLoginThrottleAllowsFreshAccount(t *testing.T) {
	throttle, _ := newTestThrottle(t)

	ok, err := throttle.Allowed(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("Allowed: %v", err)
	}
	if !ok {
		t.Fatal("fresh account should be allowed")
	}
}

func TestLoginThrottleBlocksAfterMaxFailures(t *testing.T) {
	throttle, _ := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < maxFailures-1; i++ {
		if err := throttle.RecordFailure(ctx, "jane@example.com"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	ok, err := throttle.Allowed(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Allowed: %v", err)
	}
	if !ok {
		t.Fatalf("account should still be allowed after %d failures", maxFailures-1)
	}

	if err := throttle.RecordFailure(ctx, "jane@example.com"); err != nil {
		t.Fatalf("RecordFailure: %v", err)
	}

	ok, err = throttle.Allowed(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Allowed: %v", err)
	}
	if ok {
		t.Fatalf("account should be blocked after %d failures", maxFailures)
	}
}

func TestLoginThrottleKeyIsCaseInsensitive(t *testing.T) {
	throttle, _ := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < maxFailures; i++ {
		if err := throttle.RecordFailure(ctx, "Jane@Example.COM"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	ok, err := throttle.Allowed(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Allowed: %v", err)
	}
	if ok {
		t.Fatal("differently-cased emails should share a counter")
	}
}

func TestLoginThrottleResetClearsCounter(t *testing.T) {
	throttle, _ := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < maxFailures; i++ {
		if err := throttle.RecordFailure(ctx, "jane@example.com"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	if err := throttle.Reset(ctx, "jane@example.com"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	ok, err := throttle.Allowed(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Allowed: %v", err)
	}
	if !ok {
		t.Fatal("reset should unblock the account")
	}
}

func TestLoginThrottleBlockExpires(t *testing.T) {
	throttle, mr := newTestThrottle(t)
	ctx := context.Background()

	for i := 0; i < maxFailures; i++ {
		if err := throttle.RecordFailure(ctx, "jane@example.com"); err != nil {
			t.Fatalf("RecordFailure: %v", err)
		}
	}

	mr.FastForward(blockWindow)

	ok, err := throttle.Allowed(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Allowed: %v", err)
	}
	if !ok {
		t.Fatal("block should expire after the window")
	}
}
