package cache

import (
    "context"
    "testing"
    "time"
)

func TestMemoryCacheSetGet(t *testing.T) {
    mc := NewMemoryCache()
    defer mc.Close()
    ctx := context.Background()

    type payload struct {
        Name  string
        Score float64
    }
    if err := mc.Set(ctx, "k", payload{Name: "gold", Score: 87.5}, time.Minute); err != nil {
        t.Fatalf("set: %v", err)
    }

    var got payload
    if err := mc.Get(ctx, "k", &got); err != nil {
        t.Fatalf("get: %v", err)
    }
    if got.Name != "gold" || got.Score != 87.5 {
        t.Fatalf("unexpected payload %+v", got)
    }
}

func TestMemoryCacheMiss(t *testing.T) {
    mc := NewMemoryCache()
    defer mc.Close()

    var dest string
    if err := mc.Get(context.Background(), "absent", &dest); err != ErrCacheMiss {
        t.Fatalf("expected miss, got %v", err)
    }
}

func TestMemoryCacheExpiry(t *testing.T) {
    mc := NewMemoryCache()
    defer mc.Close()
    ctx := context.Background()

    if err := mc.Set(ctx, "k", "v", time.Nanosecond); err != nil {
        t.Fatalf("set: %v", err)
    }
    time.Sleep(5 * time.Millisecond)

    var dest string
    if err := mc.Get(ctx, "k", &dest); err != ErrCacheMiss {
        t.Fatalf("expected expiry miss, got %v", err)
    }
}

func TestMemoryCacheEviction(t *testing.T) {
    mc := NewMemoryCache(WithMemoryMaxSize(2))
    defer mc.Close()
    ctx := context.Background()

    _ = mc.Set(ctx, "a", 1, time.Minute)
    _ = mc.Set(ctx, "b", 2, time.Minute)
    _ = mc.Set(ctx, "c", 3, time.Minute)

    var n int
    misses := 0
    for _, k := range []string{"a", "b", "c"} {
        if err := mc.Get(ctx, k, &n); err == ErrCacheMiss {
            misses++
        }
    }
    if misses != 1 {
        t.Fatalf("expected exactly one eviction, got %d misses", misses)
    }
}

func TestLayeredCacheMemoryOnly(t *testing.T) {
    lc := NewLayeredCache(nil)
    defer lc.Close()
    ctx := context.Background()

    if err := lc.Set(ctx, "k", "v", time.Minute); err != nil {
        t.Fatalf("set: %v", err)
    }
    var got string
    if err := lc.Get(ctx, "k", &got); err != nil || got != "v" {
        t.Fatalf("get: %v %q", err, got)
    }
    if err := lc.Get(ctx, "absent", &got); err != ErrCacheMiss {
        t.Fatalf("expected miss, got %v", err)
    }
}

func TestKey(t *testing.T) {
    if got := Key("signal", "gold", "2023-04-17"); got != "signal:gold:2023-04-17" {
        t.Fatalf("unexpected key %q", got)
    }
}
