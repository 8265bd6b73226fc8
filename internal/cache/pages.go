// Package cache holds rendered public pages in Redis so repeat reads skip
// the remote API. Form actions invalidate the affected paths after a
// successful mutation; the next request re-renders from fresh data.
package cache

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pages is the rendered-page cache. A nil *Pages is valid and disables
// caching: every lookup is a miss and every write is a no-op.
type Pages struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis. An empty redisURL disables caching and returns
// nil, nil.
func New(redisURL string, ttl time.Duration) (*Pages, error) {
	if redisURL == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Pages{client: client, ttl: ttl}, nil
}

// Close releases the Redis connection.
func (p *Pages) Close() error {
	if p == nil {
		return nil
	}
	return p.client.Close()
}

func key(path string) string {
	return "page:" + path
}

// Get returns the cached HTML for a path, if present.
func (p *Pages) Get(ctx context.Context, path string) ([]byte, bool) {
	if p == nil {
		return nil, false
	}
	data, err := p.client.Get(ctx, key(path)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores rendered HTML for a path.
func (p *Pages) Set(ctx context.Context, path string, html []byte) {
	if p == nil {
		return
	}
	p.client.Set(ctx, key(path), html, p.ttl)
}

// Invalidate drops the cached copies of the given paths, so the next
// request re-renders them.
func (p *Pages) Invalidate(ctx context.Context, paths ...string) {
	if p == nil || len(paths) == 0 {
		return
	}
	keys := make([]string, len(paths))
	for i, path := range paths {
		keys[i] = key(path)
	}
	p.client.Del(ctx, keys...)
}

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Page is a gin middleware serving GET responses from the cache and
// capturing 200 responses into it. Keys carry the bare path only, so
// requests with a query string (pagination, search) always render fresh;
// Invalidate then stays an exact-path delete.
func Page(p *Pages) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p == nil || c.Request.Method != http.MethodGet || c.Request.URL.RawQuery != "" {
			c.Next()
			return
		}
		path := c.Request.URL.Path

		if html, ok := p.Get(c.Request.Context(), path); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", html)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			p.Set(c.Request.Context(), path, capture.buf.Bytes())
		}
	}
}
