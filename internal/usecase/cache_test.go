package usecase

import (
	"testing"
	"time"
)

func TestRenderCache(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newRenderCache(time.Minute)
	c.now = func() time.Time { return now }

	c.set("/docs/intro", []byte("intro"))
	if got, ok := c.get("/docs/intro"); !ok || string(got) != "intro" {
		t.Errorf("get() = %q, %v", got, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.get("/docs/intro"); ok {
		t.Error("expired entry was returned")
	}

	c.set("/docs/intro", []byte("intro"))
	c.clear()
	if _, ok := c.get("/docs/intro"); ok {
		t.Error("entry survived clear()")
	}
}

func TestRenderCacheDisabled(t *testing.T) {
	c := newRenderCache(0)
	c.set("/docs/intro", []byte("intro"))

	if _, ok := c.get("/docs/intro"); ok {
		t.Error("a zero ttl cache returned an entry")
	}
}
