package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go.uber.org/zap"
)

// stubTokens records eviction without a real session behind it.
type stubTokens struct {
	mu      sync.Mutex
	token   string
	evicted bool
}

func (s *stubTokens) Token(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *stubTokens) Evict(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evicted = true
	s.token = ""
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *stubTokens, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(Config{BaseURL: srv.URL}, zap.NewNop())
	tokens := &stubTokens{token: "tok-1"}
	c.SetTokens(tokens)
	return c, tokens, srv
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	if err := c.Do(context.Background(), http.MethodGet, "/admin/users", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-1")
	}
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	tokens.token = ""

	if err := c.Do(context.Background(), http.MethodGet, "/admin/users", nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestDo_401EvictsSession(t *testing.T) {
	c, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := c.Do(context.Background(), http.MethodGet, "/admin/users", nil, nil)
	if !IsUnauthorized(err) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	if !tokens.evicted {
		t.Error("401 did not evict the session")
	}
}

func TestDo_ClassifiesStatuses(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusForbidden, IsForbidden, "forbidden"},
		{http.StatusNotFound, IsNotFound, "not found"},
		{http.StatusBadRequest, IsValidation, "validation"},
		{http.StatusConflict, IsValidation, "conflict is validation"},
		{http.StatusInternalServerError, IsServerError, "server error"},
		{http.StatusBadGateway, IsServerError, "bad gateway is server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			err := c.Do(context.Background(), http.MethodGet, "/x", nil, nil)
			if !tt.check(err) {
				t.Errorf("status %d classified wrong: %v", tt.status, err)
			}
			if tokens.evicted {
				t.Errorf("status %d evicted the session; only 401 should", tt.status)
			}
		})
	}
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := New(Config{BaseURL: srv.URL}, zap.NewNop())

	err := c.Do(context.Background(), http.MethodGet, "/admin/users", nil, nil)
	if !IsNetwork(err) {
		t.Fatalf("err = %v, want network", err)
	}
}

func TestDo_NeverRetries(t *testing.T) {
	var calls int
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_ = c.Do(context.Background(), http.MethodGet, "/admin/users", nil, nil)
	if calls != 1 {
		t.Errorf("server saw %d calls, want exactly 1", calls)
	}
}

func TestPing_AuthRejectionStillCountsAsReachable(t *testing.T) {
	c, tokens, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if tokens.evicted {
		t.Error("Ping evicted the session; it must never touch tokens")
	}
}

func TestPing_DownHostErrors(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(Config{BaseURL: srv.URL}, zap.NewNop())
	if err := c.Ping(context.Background()); !IsNetwork(err) {
		t.Fatalf("Ping err = %v, want network", err)
	}
}
