package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Trusted:       make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/render", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
			{Path: "/resumes/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	}
}

func TestAllow_BurstThenLimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/render", "POST")
		assert.True(t, allowed, "request %d within burst", i)
	}

	allowed, info := l.Allow("1.2.3.4", "/render", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_FirstRequestWithinBurstOne(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointConfigs = []EndpointConfig{
		{Path: "/render", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
	}
	l := NewLimiter(cfg)
	defer l.Stop()

	// a fresh bucket must hold its full burst on the first request
	allowed, info := l.Allow("192.0.2.1", "/render", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)

	allowed, _ = l.Allow("192.0.2.1", "/render", "POST")
	assert.False(t, allowed)
}

func TestAllow_ClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		l.Allow("1.2.3.4", "/render", "POST")
	}
	allowed, _ := l.Allow("5.6.7.8", "/render", "POST")
	assert.True(t, allowed)
}

func TestAllow_PrefixSharesBucket(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// different resume IDs must draw from the same bucket
	for i := 0; i < 3; i++ {
		path := fmt.Sprintf("/resumes/%d/render", i)
		allowed, _ := l.Allow("1.2.3.4", path, "POST")
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow("1.2.3.4", "/resumes/99/render", "POST")
	assert.False(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/render", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_TrustedClient(t *testing.T) {
	cfg := testConfig()
	cfg.Trusted["10.0.0.1"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/render", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestBucket_Refills(t *testing.T) {
	b := newBucket(2, 100, time.Now()) // 100 tokens/sec for a fast test
	b.tokens = 0

	time.Sleep(30 * time.Millisecond)
	b.refill(time.Now())
	assert.Greater(t, b.tokens, 1.0)
	assert.LessOrEqual(t, b.tokens, 2.0)
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().EndpointConfigs

	exact := MatchEndpoint("/render", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, "/render", exact.Path)

	prefix := MatchEndpoint("/resumes/abc/export", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, "/resumes/", prefix.Path)

	assert.Nil(t, MatchEndpoint("/resumes", "GET", configs))

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)
}

func TestEvictIdle(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/render", "POST")
	require.Len(t, l.entries, 1)

	l.evictIdle(time.Now().Add(time.Second))
	assert.Empty(t, l.entries)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 600, cfg.DefaultLimit)
	assert.NotEmpty(t, cfg.EndpointConfigs)
}
