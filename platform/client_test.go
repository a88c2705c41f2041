/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package platform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tzeva/platform"
)

func newTestServer(t *testing.T) (*httptest.Server, map[string]int) {
	t.Helper()
	hits := map[string]int{}

	mux := http.NewServeMux()
	mux.HandleFunc("/tokens", func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		writeJSON(t, w, []map[string]any{
			{"id": "t1", "name": "Primary", "tokenType": "color", "value": "#102030"},
		})
	})
	mux.HandleFunc("/themes", func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		writeJSON(t, w, []map[string]any{
			{"id": "th-light", "name": "Brand Light"},
		})
	})
	mux.HandleFunc("/groups", func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		writeJSON(t, w, []map[string]any{})
	})
	mux.HandleFunc("/collections", func(w http.ResponseWriter, r *http.Request) {
		hits[r.URL.Path]++
		writeJSON(t, w, []map[string]any{
			{"persistentId": "c1", "name": "Core"},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, hits
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestFetch(t *testing.T) {
	server, hits := newTestServer(t)
	client := platform.NewClient(server.URL, "secret")

	dataSet, err := client.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, dataSet.Tokens, 1)
	assert.Equal(t, "Primary", dataSet.Tokens[0].Name)
	require.Len(t, dataSet.Themes, 1)
	assert.Equal(t, "Brand Light", dataSet.Themes[0].Name)
	require.Len(t, dataSet.Collections, 1)

	for _, path := range []string{"/tokens", "/themes", "/groups", "/collections"} {
		assert.Equal(t, 1, hits[path], "endpoint %s should be fetched once", path)
	}
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, []map[string]any{})
	}))
	t.Cleanup(server.Close)

	client := platform.NewClient(server.URL, "secret")
	client.SetRetryDelay(time.Millisecond)
	_, err := client.Fetch(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, attempts, 3)
}

func TestFetch_ClientErrorIsFatal(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := platform.NewClient(server.URL, "bad-token")
	_, err := client.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "4xx responses are not retried")
}

func TestWriteTokenProperty(t *testing.T) {
	var gotPath, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			gotPath = r.URL.Path
			var body struct {
				Value string `json:"value"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gotBody = body.Value
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(t, w, []map[string]any{})
	}))
	t.Cleanup(server.Close)

	client := platform.NewClient(server.URL, "secret")
	err := client.WriteTokenProperty(context.Background(), "t1", "exportName", "primary")
	require.NoError(t, err)

	assert.Equal(t, "/tokens/t1/properties/exportName", gotPath)
	assert.Equal(t, "primary", gotBody)
}
