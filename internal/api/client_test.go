package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritableProjects(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/v1/writable-projects/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"organization_name": "acme", "project_name": "shop"},
			{"organization_name": "acme", "project_name": "billing"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok123", time.Second)
	projects, err := client.WritableProjects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
	require.Len(t, projects, 2)
	assert.Equal(t, "acme/shop", projects[0].Path())
}

func TestWritableProjects_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	projects, err := NewClient(server.URL, "tok", time.Second).WritableProjects(context.Background())

	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestWritableProjects_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "tok", time.Second).WritableProjects(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestWritableProjects_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "tok", 200*time.Millisecond)

	_, err := client.WritableProjects(context.Background())

	assert.Error(t, err)
}
