package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollectors(reg)

	c.ObserveHTTP(http.MethodGet, "/api/v1/astro", 200, 15*time.Millisecond)
	c.ObserveHTTP(http.MethodGet, "/api/v1/astro", 200, 5*time.Millisecond)
	c.RecordTokens("gpt-test", TokenUsage{PromptTokens: 40, CompletionTokens: 12})
	c.RecordTokens("gpt-test", TokenUsage{})
	c.RecordRejection("Spam detected")

	require.Equal(t, 2.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("GET", "/api/v1/astro", "200")))
	require.Equal(t, 40.0, testutil.ToFloat64(c.llmTokens.WithLabelValues("gpt-test", "prompt")))
	require.Equal(t, 12.0, testutil.ToFloat64(c.llmTokens.WithLabelValues("gpt-test", "completion")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.moderationRejections.WithLabelValues("Spam detected")))
}

func TestNilCollectorsAreNoops(t *testing.T) {
	var c *Collectors
	c.ObserveHTTP("GET", "/", 200, time.Millisecond)
	c.RecordTokens("m", TokenUsage{PromptTokens: 1})
	c.RecordRejection("x")
}

func TestTokenUsageNormalize(t *testing.T) {
	u := TokenUsage{PromptTokens: 3, CompletionTokens: 4}.Normalize()
	require.Equal(t, 7, u.TotalTokens)
	require.False(t, u.IsZero())
	require.True(t, TokenUsage{}.IsZero())
}
