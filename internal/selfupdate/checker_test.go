package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewerVersion(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{"v1.0.0", "v1.1.0", true},
		{"1.0.0", "1.1.0", true},
		{"v1.1.0", "v1.0.0", false},
		{"v1.2.3", "v1.2.3", false},
		{"v1.2.3", "v2.0.0", true},
		{"v1.9.0", "v1.10.0", true},
		{"dev-build", "v1.0.0", true},
		{"v1.0.0", "v1.0.0-rc.1", false},
		{"", "v1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.current+"->"+tt.latest, func(t *testing.T) {
			assert.Equal(t, tt.want, newerVersion(tt.current, tt.latest))
		})
	}
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/casetalk/casetalk/releases/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name": "v1.4.0", "html_url": "https://example.com/releases/v1.4.0"}`))
	}))
	defer srv.Close()

	c := NewChecker()
	c.apiBaseURL = srv.URL

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
	require.NoError(t, err)
	assert.Equal(t, "v1.3.0", result.CurrentVersion)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "https://example.com/releases/v1.4.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v1.3.0"}`))
	}))
	defer srv.Close()

	c := NewChecker()
	c.apiBaseURL = srv.URL

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewChecker()
	c.apiBaseURL = srv.URL

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	assert.Error(t, err)
}

func TestUpdate_DevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdate_AlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v2.0.0"}`))
	}))
	defer srv.Close()

	c := NewChecker()
	c.apiBaseURL = srv.URL

	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v2.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}
