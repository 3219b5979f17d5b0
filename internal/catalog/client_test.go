package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexDoc = `{
  "v": 5,
  "entries": {
    "button--primary": {
      "id": "button--primary",
      "type": "story",
      "name": "Primary",
      "tags": ["visual-test"],
      "importPath": "./src/Button.stories.tsx",
      "somethingUnknown": {"ignored": true}
    },
    "button--docs": {
      "id": "button--docs",
      "type": "docs",
      "name": "Docs"
    },
    "badge--new": {
      "id": "badge--new",
      "type": "story",
      "name": "New",
      "parameters": {"snapshot": {"image": true}}
    },
    "broken": {
      "id": "",
      "type": "story"
    }
  }
}`

func TestFetchIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(indexDoc))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/index.json")
	idx, err := client.FetchIndex(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, idx.Version)
	assert.Len(t, idx.Entries, 4)

	// Stories() keeps typed stories with ids, sorted.
	stories := idx.Stories()
	require.Len(t, stories, 2)
	assert.Equal(t, "badge--new", stories[0].ID)
	assert.Equal(t, "button--primary", stories[1].ID)

	// Per-story override flags round-trip.
	forced := stories[0].ForcedImage()
	require.NotNil(t, forced)
	assert.True(t, *forced)
	assert.Nil(t, stories[0].ForcedPosition())
	assert.Nil(t, stories[1].ForcedImage())
}

func TestFetchIndex_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/index.json")
	_, err := client.FetchIndex(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), srv.URL)
}

func TestFetchIndex_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(srv.URL+"/index.json", WithTimeout(50*time.Millisecond))
	_, err := client.FetchIndex(context.Background())

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Contains(t, err.Error(), srv.URL)
	assert.Contains(t, err.Error(), "timed out")

	// A timeout is not reported as a generic fetch error.
	var fetchErr *FetchError
	assert.False(t, errors.As(err, &fetchErr))
}

func TestFetchIndex_Unreachable(t *testing.T) {
	// A closed port fails fast with a fetch error, not a timeout.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url + "/index.json")
	_, err := client.FetchIndex(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}

func TestFetchIndex_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/index.json")
	_, err := client.FetchIndex(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "decoding index")
}
