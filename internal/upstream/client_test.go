package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sabari1933/hrconsole/internal/domain/employee"
	"github.com/sabari1933/hrconsole/internal/upstream"
)

func newClient(baseURL string) *upstream.Client {
	return upstream.NewClient(baseURL, 2*time.Second, nil)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"count":0}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	if _, err := c.ListEmployees(context.Background(), "tok-abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("got Authorization %q, want Bearer tok-abc", gotAuth)
	}
}

func TestClient_OmitsHeaderWithoutToken(t *testing.T) {
	var sawHeader bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accessToken":"t","user":{"id":"u1"}}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	_, err := c.Login(context.Background(), upstream.Credentials{Email: "a@b.c", Password: "pw"})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sawHeader {
		t.Fatalf("login request must not carry an Authorization header")
	}
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"error":{"code":"token_expired","message":"expired"}}`,
			wantErr: upstream.ErrAuthExpired,
		},
		{
			name:    "not_found",
			status:  http.StatusNotFound,
			body:    `{"error":{"code":"not_found","message":"no such employee"}}`,
			wantErr: upstream.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newClient(srv.URL)

			_, err := c.GetEmployee(context.Background(), "tok", "e1")

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_StatusErrorCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"email_taken","message":"Email already registered"}}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	_, err := c.Register(context.Background(), upstream.Registration{
		Name: "A", Email: "a@b.c", Password: "password1",
	})

	var statusErr *upstream.StatusError

	if !errors.As(err, &statusErr) {
		t.Fatalf("got %v, want *StatusError", err)
	}

	if statusErr.Status != http.StatusConflict {
		t.Fatalf("got status %d, want 409", statusErr.Status)
	}

	if statusErr.Code != "email_taken" || statusErr.Message != "Email already registered" {
		t.Fatalf("envelope not parsed: %+v", statusErr)
	}
}

func TestClient_StatusErrorWithoutEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	_, err := c.DashboardOverview(context.Background(), "tok")

	var statusErr *upstream.StatusError

	if !errors.As(err, &statusErr) {
		t.Fatalf("got %v, want *StatusError", err)
	}

	if statusErr.Message == "" {
		t.Fatalf("message should fall back to the status text")
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	// grab a port and close it again so nothing is listening
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := newClient(base)

	_, err := c.ListEmployees(context.Background(), "tok")

	if !errors.Is(err, upstream.ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
}

func TestClient_DecodesListEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/employees" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"e1","name":"Priya","email":"p@x.co","salary":50000,"status":"active"}],"count":1}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)

	got, err := c.ListEmployees(context.Background(), "tok")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []employee.Employee{{ID: "e1", Name: "Priya", Email: "p@x.co", Salary: 50000, Status: "active"}}

	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "none"},
		{"auth", upstream.ErrAuthExpired, "auth_expired"},
		{"not_found", upstream.ErrNotFound, "not_found"},
		{"unavailable", upstream.ErrUnavailable, "unavailable"},
		{"status", &upstream.StatusError{Status: 422}, "status_422"},
		{"unknown", errors.New("boom"), "unknown"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			if got := upstream.Classify(tt.err); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
