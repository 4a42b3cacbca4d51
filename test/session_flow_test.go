package test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	pmclient "github.com/Nikhilraj155/project-managment"
	"github.com/Nikhilraj155/project-managment/session"
)

func blackboxToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := func(v any) string {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal token segment: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + "." + base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

// TestLoginRestartRestore drives the full consumer flow: login in one client,
// then build a second client over the same credential file, the way a new CLI
// invocation would, and check the session comes back without re-auth.
func TestLoginRestartRestore(t *testing.T) {
	token := blackboxToken(t, map[string]any{"user_id": "u9", "username": "dev", "role": "student"})

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": token,
			"token_type":   "bearer",
			"role":         "student",
		})
	})
	mux.HandleFunc("/projects/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Invalid token"}`))
			return
		}
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	credPath := filepath.Join(t.TempDir(), "credentials.json")
	build := func() *pmclient.Client {
		client, err := pmclient.New().
			WithConfig(pmclient.Config{DevBaseURL: srv.URL}).
			WithCredentials(session.NewFileCredentials(credPath)).
			Build()
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		return client
	}

	ctx := context.Background()

	first := build()
	if _, err := first.Login(ctx, "dev@college.edu", "secret12"); err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	// Fresh client, same credential file: a process restart.
	second := build()
	sess, err := second.Sessions().Restore(ctx)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if sess.UserID != "u9" || sess.Role != session.RoleStudent {
		t.Fatalf("restored session = %+v, want u9/student", sess)
	}

	if _, err := second.ListProjects(ctx); err != nil {
		t.Fatalf("authenticated call after restore failed: %v", err)
	}

	if err := second.Logout(ctx); err != nil {
		t.Fatalf("Logout() error: %v", err)
	}

	// A third client sees no credential at all.
	third := build()
	if _, err := third.Sessions().Restore(ctx); !errors.Is(err, session.ErrNoCredential) {
		t.Fatalf("Restore() after logout error = %v, want ErrNoCredential", err)
	}
}

// TestExpiredServerSideSession checks the cross-package 401 contract: the
// backend rejects the persisted token, the client surfaces ErrUnauthorized,
// and the credential file is gone so the next restore fails cleanly.
func TestExpiredServerSideSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer srv.Close()

	credPath := filepath.Join(t.TempDir(), "credentials.json")
	creds := session.NewFileCredentials(credPath)
	ctx := context.Background()

	token := blackboxToken(t, map[string]any{"user_id": "u1", "role": "mentor"})
	if err := creds.Store(ctx, session.Credential{Token: token, Role: "mentor"}); err != nil {
		t.Fatalf("seed credential: %v", err)
	}

	client, err := pmclient.New().
		WithConfig(pmclient.Config{DevBaseURL: srv.URL}).
		WithCredentials(creds).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if _, err := client.Sessions().Restore(ctx); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	if _, err := client.ListTeams(ctx); !errors.Is(err, pmclient.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}

	if _, err := creds.Load(ctx); !errors.Is(err, session.ErrNoCredential) {
		t.Fatalf("credential survived the 401, Load error = %v", err)
	}
}
