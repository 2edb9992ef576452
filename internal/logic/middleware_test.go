package logic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestIPLimitersSweepIdleClients(t *testing.T) {
	l := &ipLimiters{limiters: map[string]*clientLimiter{}, limit: rate.Every(time.Second), burst: 1}
	start := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	later := start.Add(10 * time.Minute)

	first := l.get("10.0.0.1", start)
	assert.Same(t, first, l.get("10.0.0.1", start), "limiter is reused per client")

	// idle clients survive until the periodic sweep
	for l.lookups < sweepEvery-1 {
		l.get("10.0.0.2", later)
	}
	assert.Len(t, l.limiters, 2)

	l.get("10.0.0.2", later)
	assert.Len(t, l.limiters, 1)
	assert.NotContains(t, l.limiters, "10.0.0.1")
}
