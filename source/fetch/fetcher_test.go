package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("id,parent_structure_id\n997,\n"))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "atlasgraph-test/0.1", 1<<20)
	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "id,parent_structure_id"))
	assert.Equal(t, "atlasgraph-test/0.1", gotUA)
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "atlasgraph-test/0.1", 1<<20)
	_, err := f.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewFetcher(2*time.Second, "atlasgraph-test/0.1", 1<<20)
	_, err := f.Fetch(context.Background(), url)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestFetchSizeCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 2048))
	}))
	defer srv.Close()

	f := NewFetcher(5*time.Second, "atlasgraph-test/0.1", 1024)
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content too large")
}

func TestFetchCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(5*time.Second, "atlasgraph-test/0.1", 1<<20)
	_, err := f.Fetch(ctx, srv.URL)
	assert.Error(t, err)
}
