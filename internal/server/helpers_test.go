package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/tarunm/keygate/config"
)

// TestServer wraps the HTTP server for testing
type TestServer struct {
	URL    string
	server *http.Server
}

// SetupTestServer creates and starts a test server on a random port
func SetupTestServer(t *testing.T) (*TestServer, func()) {
	t.Helper()

	// Find available port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to find available port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	cfg := testConfig(fmt.Sprintf("%d", port))
	srv := NewHTTPServer(cfg, NewRouter(cfg))

	// Serve on the listener we already hold
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			t.Logf("Server error: %v", err)
		}
	}()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)

	// Wait for server to be ready
	retries := 10
	for i := 0; i < retries; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			break
		}
		if i == retries-1 {
			t.Fatalf("Server failed to start: %v", err)
		}
		time.Sleep(100 * time.Millisecond)
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}

	return &TestServer{URL: baseURL, server: srv}, cleanup
}

func testConfig(port string) *config.Config {
	return &config.Config{
		Port:            port,
		GinMode:         "test",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     0,
		ShutdownTimeout: 5 * time.Second,
		AccessLog:       false,
		MetricsEnabled:  true,
	}
}

// makeGetRequest issues a GET with each apiKeys entry added as an X-Api-Key line
func makeGetRequest(t *testing.T, url string, apiKeys ...string) (int, string, http.Header) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	for _, key := range apiKeys {
		req.Header.Add("X-Api-Key", key)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	return resp.StatusCode, string(body), resp.Header
}
