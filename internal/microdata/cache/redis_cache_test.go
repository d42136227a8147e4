package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-seo/microdata/internal/microdata/memory"
	"github.com/storefront-seo/microdata/internal/microdata/model"
	"github.com/storefront-seo/microdata/internal/microdata/render"
)

type fakeRedis struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.failSet != nil {
		return redis.NewStatusResult("", f.failSet)
	}
	f.data[key] = value.(string)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type stubRenderer struct {
	display bool
	out     string
	err     error
	calls   int
}

func (s *stubRenderer) Display() bool { return s.display }

func (s *stubRenderer) RenderJSON(ctx context.Context) (string, error) {
	s.calls++
	return s.out, s.err
}

func (s *stubRenderer) CacheKey() string             { return "stub:1" }
func (s *stubRenderer) CacheLifetime() time.Duration { return time.Hour }

func TestCachedRendererMissThenHit(t *testing.T) {
	rdb := newFakeRedis()
	c := NewRedisCache(rdb, "seo:")
	stub := &stubRenderer{display: true, out: `{"@type":"OnlineStore"}`}
	r := c.Wrap(stub)
	ctx := context.Background()

	out, err := r.RenderJSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, stub.out, out)
	assert.Equal(t, stub.out, rdb.data["seo:stub:1"])
	assert.Equal(t, time.Hour, rdb.ttls["seo:stub:1"])

	out, err = r.RenderJSON(ctx)
	require.NoError(t, err)
	assert.Equal(t, stub.out, out)
	assert.Equal(t, 1, stub.calls)
}

func TestCachedRendererNotDisplayed(t *testing.T) {
	rdb := newFakeRedis()
	stub := &stubRenderer{display: false, out: "ignored"}
	r := NewRedisCache(rdb, "").Wrap(stub)

	out, err := r.RenderJSON(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, r.Display())
	assert.Zero(t, stub.calls)
	assert.Empty(t, rdb.data)
}

func TestCachedRendererRedisDown(t *testing.T) {
	rdb := newFakeRedis()
	rdb.failGet = errors.New("dial tcp: connection refused")
	rdb.failSet = errors.New("dial tcp: connection refused")
	stub := &stubRenderer{display: true, out: "{}"}
	r := NewRedisCache(rdb, "").Wrap(stub)

	out, err := r.RenderJSON(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
	assert.Equal(t, 1, stub.calls)
}

func TestCachedRendererDoesNotStoreErrors(t *testing.T) {
	rdb := newFakeRedis()
	stub := &stubRenderer{display: true, err: errors.New("boom")}
	r := NewRedisCache(rdb, "").Wrap(stub)

	_, err := r.RenderJSON(context.Background())
	assert.EqualError(t, err, "boom")
	assert.Empty(t, rdb.data)
}

func TestInvalidate(t *testing.T) {
	rdb := newFakeRedis()
	c := NewRedisCache(rdb, "seo:")
	stub := &stubRenderer{display: true, out: "{}"}
	_, err := c.Wrap(stub).RenderJSON(context.Background())
	require.NoError(t, err)
	require.Contains(t, rdb.data, "seo:stub:1")

	require.NoError(t, c.Invalidate(context.Background(), stub))
	assert.NotContains(t, rdb.data, "seo:stub:1")
}

func TestOrganizationCachedPerStore(t *testing.T) {
	rdb := newFakeRedis()
	c := NewRedisCache(rdb, "")
	cfg := memory.Config{}
	cfg.Set("", render.PathStoreName, "Default Store")
	cfg.Set("2", render.PathStoreName, "Boutique FR")
	layout := memory.Layout{render.LogoBlock: memory.Logo("https://shop.example/logo.svg")}

	for _, storeID := range []string{"1", "2"} {
		page := render.Page{Store: model.Store{ID: storeID}, Layout: layout}
		org := render.NewOrganization(page, cfg, memory.Variables{}, nil)
		_, err := c.Wrap(org).RenderJSON(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, rdb.ttls["microdata_logo:"+storeID])
	}

	assert.Contains(t, rdb.data["microdata_logo:1"], `"name":"Default Store"`)
	assert.Contains(t, rdb.data["microdata_logo:2"], `"name":"Boutique FR"`)
}
