package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeEndpoint(t *testing.T) {
	cases := map[string]string{
		"https://abc123.r2.cloudflarestorage.com":         "abc123.r2.cloudflarestorage.com",
		"https://abc123.r2.cloudflarestorage.com/bucket/": "abc123.r2.cloudflarestorage.com",
		"http://localhost:9000":                           "localhost:9000",
		" localhost:9000 ":                                "localhost:9000",
		"":                                                "",
	}
	for in, want := range cases {
		require.Equal(t, want, sanitizeEndpoint(in), in)
	}
}

func TestNewR2ArchiveRequiresBucket(t *testing.T) {
	_, err := NewR2Archive(R2Config{Endpoint: "localhost:9000"}, nil)
	require.Error(t, err)

	a, err := NewR2Archive(R2Config{Endpoint: "http://localhost:9000", Bucket: "cosmos", AccessKey: "k", SecretKey: "s"}, nil)
	require.NoError(t, err)
	require.Equal(t, "cosmos", a.bucket)
}

func TestMemoryArchiveCopiesData(t *testing.T) {
	a := NewMemoryArchive()
	data := []byte(`{"moon_phase":"Full Moon"}`)
	require.NoError(t, a.Put(context.Background(), "cosmic/2025-10-07.json", data, "application/json"))
	data[0] = 'x'

	obj, ok := a.Get("cosmic/2025-10-07.json")
	require.True(t, ok)
	require.Equal(t, "application/json", obj.ContentType)
	require.Equal(t, `{"moon_phase":"Full Moon"}`, string(obj.Data))

	_, ok = a.Get("cosmic/missing.json")
	require.False(t, ok)
}
