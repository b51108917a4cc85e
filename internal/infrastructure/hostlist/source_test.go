package hostlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hosts.txt")
	if err := os.WriteFile(path, []byte("example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	source := NewFileSource(SourceConfig{Type: SourceTypeFile, Location: path})
	ctx := context.Background()

	if source.Name() != "file:"+path {
		t.Errorf("unexpected name %q", source.Name())
	}
	if !source.IsHealthy(ctx) {
		t.Error("source should be healthy")
	}

	data, err := source.Fetch(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "example.com\n" {
		t.Errorf("unexpected data %q", data)
	}
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	missing := NewFileSource(SourceConfig{Location: filepath.Join(dir, "missing.txt")})
	if missing.IsHealthy(ctx) {
		t.Error("missing file should not be healthy")
	}
	if _, err := missing.Fetch(ctx); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	if _, err := NewFileSource(SourceConfig{Location: empty}).Fetch(ctx); !errors.Is(err, ErrEmptyData) {
		t.Errorf("expected ErrEmptyData, got %v", err)
	}

	if NewFileSource(SourceConfig{Location: dir}).IsHealthy(ctx) {
		t.Error("directory should not be healthy")
	}
}

func TestHTTPSource_Name(t *testing.T) {
	source := NewHTTPSource(SourceConfig{Type: SourceTypeHTTP, Location: "https://example.com/hosts.txt"})

	expected := "http:https://example.com/hosts.txt"
	if source.Name() != expected {
		t.Errorf("expected name %q, got %q", expected, source.Name())
	}
}

func TestHTTPSource_Fetch_Success(t *testing.T) {
	testData := "example.com\n*.example.org\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Error("User-Agent header not set correctly")
		}
		if r.Header.Get("Accept") != "text/plain, text/csv, application/zip, */*" {
			t.Error("Accept header not set correctly")
		}

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testData))
	}))
	defer server.Close()

	source := NewHTTPSource(SourceConfig{
		Type:       SourceTypeHTTP,
		Location:   server.URL,
		Timeout:    5 * time.Second,
		MaxRetries: 1,
		UserAgent:  "test-agent",
	})

	data, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != testData {
		t.Errorf("expected data %q, got %q", testData, string(data))
	}
}

func TestHTTPSource_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "HTTP error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantErr: ErrEmptyData,
		},
		{
			name: "too large",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Length", "200000000")
				w.WriteHeader(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			source := NewHTTPSource(SourceConfig{
				Type:       SourceTypeHTTP,
				Location:   server.URL,
				Timeout:    5 * time.Second,
				MaxRetries: 1,
			})

			_, err := source.Fetch(context.Background())
			if err == nil {
				t.Fatal("expected error but got none")
			}

			var sourceErr *SourceError
			if !errors.As(err, &sourceErr) {
				t.Errorf("expected SourceError, got %T", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestHTTPSource_Fetch_Retry(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("example.com"))
	}))
	defer server.Close()

	source := NewHTTPSource(SourceConfig{
		Type:       SourceTypeHTTP,
		Location:   server.URL,
		Timeout:    5 * time.Second,
		MaxRetries: 3,
		RetryDelay: 10 * time.Millisecond,
	})

	data, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "example.com" {
		t.Errorf("expected 'example.com', got %q", string(data))
	}
	if n := atomic.LoadInt32(&attempts); n != 3 {
		t.Errorf("expected 3 attempts, got %d", n)
	}
}

func TestHTTPSource_Fetch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("example.com"))
	}))
	defer server.Close()

	source := NewHTTPSource(SourceConfig{
		Type:       SourceTypeHTTP,
		Location:   server.URL,
		Timeout:    5 * time.Second,
		MaxRetries: 1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := source.Fetch(ctx); err == nil {
		t.Error("expected context cancellation error")
	}
}

func TestHTTPSource_IsHealthy_Cached(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD request, got %s", r.Method)
		}
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	source := NewHTTPSource(SourceConfig{Type: SourceTypeHTTP, Location: server.URL})
	ctx := context.Background()

	if !source.IsHealthy(ctx) {
		t.Error("source should be healthy")
	}
	source.IsHealthy(ctx)

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected cached result after 1 call, got %d calls", n)
	}
}

func TestHTTPSource_IsHealthy_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	source := NewHTTPSource(SourceConfig{Type: SourceTypeHTTP, Location: server.URL})

	if source.IsHealthy(context.Background()) {
		t.Error("source should not be healthy")
	}
}
