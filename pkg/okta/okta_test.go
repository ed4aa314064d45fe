package okta

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heal-clinic/heal_backend/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.OktaConfig{
		OrgURL:   srv.URL,
		APIToken: "test-token",
		GroupID:  "grp1",
	})
}

func TestUserExists(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		want    bool
		wantErr bool
	}{
		{name: "user found", status: http.StatusOK, want: true},
		{name: "user absent", status: http.StatusNotFound, want: false},
		{name: "provider error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "SSWS test-token" {
					t.Errorf("Authorization header = %q", got)
				}
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					w.Write([]byte(`{"id":"00u123","status":"ACTIVE"}`))
				}
			})

			got, err := client.UserExists(context.Background(), "jane@example.com")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("UserExists() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("UserExists() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("success returns subject id", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("activate") != "true" {
				t.Errorf("expected activate=true, got %q", r.URL.RawQuery)
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id":"00uabc","status":"ACTIVE"}`))
		})

		id, err := client.CreateUser(context.Background(), CreateUserRequest{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "s3cret!pass",
		})
		if err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if id != "00uabc" {
			t.Errorf("CreateUser() id = %q, want %q", id, "00uabc")
		}
	})

	t.Run("duplicate login", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errorCode":"E0000001","errorSummary":"login: An object with this field already exists"}`))
		})

		_, err := client.CreateUser(context.Background(), CreateUserRequest{Email: "jane@example.com"})
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Errorf("CreateUser() error = %v, want ErrUserAlreadyExists", err)
		}
	})

	t.Run("missing id in response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		})

		_, err := client.CreateUser(context.Background(), CreateUserRequest{Email: "jane@example.com"})
		if !errors.Is(err, ErrUnexpectedResponse) {
			t.Errorf("CreateUser() error = %v, want ErrUnexpectedResponse", err)
		}
	})
}
