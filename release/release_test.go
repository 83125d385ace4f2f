package release

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	moterrors "github.com/bitesizing/motlab/errors"
)

// newTestClient points a Client at a fake GitHub API.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("", "bitesizing", "mot-task")
	if err := c.SetBaseURL(server.URL + "/"); err != nil {
		t.Fatalf("SetBaseURL: %v", err)
	}
	return c
}

func TestLatest(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/bitesizing/mot-task/releases/latest" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"tag_name": "v1.3.0",
			"name": "Calibration fixes",
			"html_url": "https://github.com/bitesizing/mot-task/releases/tag/v1.3.0",
			"published_at": "2026-02-10T12:00:00Z"
		}`)
	}))

	rel, err := c.Latest(context.Background())
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}

	if got := rel.Tag; got != "v1.3.0" {
		t.Errorf("Tag = %q, want %q", got, "v1.3.0")
	}
	if got := rel.Name; got != "Calibration fixes" {
		t.Errorf("Name = %q, want %q", got, "Calibration fixes")
	}
	if rel.PublishedAt.IsZero() {
		t.Errorf("PublishedAt is zero")
	}
}

func TestLatest_NoRelease(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))

	_, err := c.Latest(context.Background())
	if !errors.Is(err, moterrors.ErrNoRelease) {
		t.Errorf("Latest() error = %v, want ErrNoRelease", err)
	}
}

func TestCheckForUpdate(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tag_name": "v1.3.0"}`)
	}))

	tests := []struct {
		current string
		want    bool
	}{
		{"v1.2.0", true},
		{"v1.3.0", false},
		{"v1.4.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			rel, newer, err := c.CheckForUpdate(context.Background(), tt.current)
			if err != nil {
				t.Fatalf("CheckForUpdate() error = %v", err)
			}
			if newer != tt.want {
				t.Errorf("newer = %v, want %v", newer, tt.want)
			}
			if rel == nil {
				t.Errorf("release is nil")
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "1.0.0", 0},
		{"1.2", "1.2.0", 0},
		{"1.2.1", "1.2.0", 1},
		{"1.2.0", "1.10.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.3-rc1", "1.2", 1},
		{"", "0.0.0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := CompareVersions(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
