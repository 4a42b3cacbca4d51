package pmclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Nikhilraj155/project-managment/session"
)

// memCredentials is an in-memory session.Credentials with operation counters,
// so tests can assert how often the gateway touches persisted state.
type memCredentials struct {
	mu     sync.Mutex
	cred   session.Credential
	has    bool
	loads  int
	clears int
}

func (m *memCredentials) Load(context.Context) (session.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if !m.has {
		return session.Credential{}, session.ErrNoCredential
	}
	return m.cred, nil
}

func (m *memCredentials) Store(_ context.Context, cred session.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cred = cred
	m.has = true
	return nil
}

func (m *memCredentials) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.cred = session.Credential{}
	m.has = false
	return nil
}

func (m *memCredentials) clearCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clears
}

func (m *memCredentials) hasCredential() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.has
}

// testToken builds a decodable unsigned token with the given payload claims.
func testToken(t *testing.T, claims map[string]any) string {
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

func newTestClient(t *testing.T, handler http.Handler) (*Client, *memCredentials, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := &memCredentials{}
	client, err := New().
		WithConfig(Config{DevBaseURL: srv.URL}).
		WithCredentials(creds).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return client, creds, srv
}

func seedCredential(t *testing.T, creds *memCredentials, token string, role session.Role) {
	t.Helper()
	if err := creds.Store(context.Background(), session.Credential{Token: token, Role: string(role)}); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
}

func TestJSONRequestDefaults(t *testing.T) {
	var got struct {
		contentType string
		auth        string
		requestID   string
		userAgent   string
	}
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.contentType = r.Header.Get("Content-Type")
		got.auth = r.Header.Get("Authorization")
		got.requestID = r.Header.Get("X-Request-ID")
		got.userAgent = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(Project{ID: "p1"})
	}))

	token := testToken(t, map[string]any{"user_id": "u1", "role": "student"})
	seedCredential(t, creds, token, session.RoleStudent)

	if _, err := client.CreateProject(context.Background(), ProjectInput{Title: "x", TeamID: "t1", MentorID: "m1"}); err != nil {
		t.Fatalf("CreateProject() error: %v", err)
	}
	if got.contentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", got.contentType)
	}
	if want := "Bearer " + token; got.auth != want {
		t.Fatalf("Authorization = %q, want %q", got.auth, want)
	}
	if got.requestID == "" {
		t.Fatal("X-Request-ID missing, want a generated value")
	}
	if got.userAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", got.userAgent, defaultUserAgent)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	var got string
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

	ctx := WithRequestID(context.Background(), "action-42")
	if _, err := client.ListProjects(ctx); err != nil {
		t.Fatalf("ListProjects() error: %v", err)
	}
	if got != "action-42" {
		t.Fatalf("X-Request-ID = %q, want action-42", got)
	}
}

func TestMultipartNeverGetsJSONContentType(t *testing.T) {
	var contentType string
	var fields map[string]string
	var gotFile string
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fields = map[string]string{}
		for k := range r.MultipartForm.Value {
			fields[k] = r.FormValue(k)
		}
		if fhs := r.MultipartForm.File["file"]; len(fhs) > 0 {
			gotFile = fhs[0].Filename
		}
		json.NewEncoder(w).Encode(Presentation{ID: "pr1"})
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RolePanel)

	input := PresentationInput{
		TeamID:           "t1",
		ProjectID:        "p1",
		RoundNumber:      2,
		Date:             "2026-09-15",
		AssignedPanelIDs: []string{"panel1", "panel2"},
	}
	_, err := client.SchedulePresentation(context.Background(), input, "deck.pdf", strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("SchedulePresentation() error: %v", err)
	}

	if !strings.HasPrefix(contentType, "multipart/form-data; boundary=") {
		t.Fatalf("Content-Type = %q, want multipart/form-data with boundary", contentType)
	}
	if strings.Contains(contentType, "json") {
		t.Fatalf("multipart request carried a JSON content type: %q", contentType)
	}
	want := map[string]string{
		"team_id":            "t1",
		"project_id":         "p1",
		"round_number":       "2",
		"date":               "2026-09-15",
		"assigned_panel_ids": "panel1,panel2",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Fatalf("form field %q = %q, want %q", k, fields[k], v)
		}
	}
	if gotFile != "deck.pdf" {
		t.Fatalf("file part filename = %q, want deck.pdf", gotFile)
	}
}

func TestAuthorizationHeaderOverridden(t *testing.T) {
	var got string
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	token := testToken(t, map[string]any{"user_id": "u1"})
	seedCredential(t, creds, token, session.RoleStudent)

	header := http.Header{}
	header.Set("Authorization", "Bearer stale-token")
	err := client.do(context.Background(), call{method: http.MethodGet, path: "/tasks/", header: header})
	if err != nil {
		t.Fatalf("do() error: %v", err)
	}
	if want := "Bearer " + token; got != want {
		t.Fatalf("Authorization = %q, want the fresh token %q", got, want)
	}
}

func TestNoAuthCallOmitsBearer(t *testing.T) {
	var got string
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(IdeaLinkInfo{Valid: true})
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleAdmin)

	info, err := client.ResolveIdeaLink(context.Background(), "tok123")
	if err != nil {
		t.Fatalf("ResolveIdeaLink() error: %v", err)
	}
	if !info.Valid {
		t.Fatal("link not valid")
	}
	if got != "" {
		t.Fatalf("public endpoint carried Authorization %q, want none", got)
	}
}

func TestUnauthorizedClearsCredentialOnce(t *testing.T) {
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token"}`))
	}))
	token := testToken(t, map[string]any{"user_id": "u1", "role": "student"})
	seedCredential(t, creds, token, session.RoleStudent)
	if _, err := client.Sessions().Restore(context.Background()); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	_, err := client.ListProjects(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *APIError", err)
	}
	if apiErr.Detail != "Invalid token" {
		t.Fatalf("Detail = %q, want Invalid token", apiErr.Detail)
	}

	if creds.hasCredential() {
		t.Fatal("credential still persisted after 401")
	}
	if got := creds.clearCount(); got != 1 {
		t.Fatalf("credential cleared %d times, want exactly 1", got)
	}
	if state := client.Sessions().State(); state != session.StateUnauthenticated {
		t.Fatalf("session state = %v, want Unauthenticated", state)
	}
}

func TestRedirectRetriedExactlyOnceWithBearer(t *testing.T) {
	token := testToken(t, map[string]any{"user_id": "u1"})
	var auths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Header().Set("Location", "/v2/tasks/")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/v2/tasks/", func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	})
	client, creds, _ := newTestClient(t, mux)
	seedCredential(t, creds, token, session.RoleStudent)

	if _, err := client.ListTasks(context.Background()); err != nil {
		t.Fatalf("ListTasks() error: %v", err)
	}

	if len(auths) != 2 {
		t.Fatalf("dispatched %d requests, want 2 (original plus one retry)", len(auths))
	}
	want := "Bearer " + token
	for i, got := range auths {
		if got != want {
			t.Fatalf("request %d Authorization = %q, want %q", i, got, want)
		}
	}
	if got := client.MetricsSnapshot().Counters[MetricRetriedRedirects]; got != 1 {
		t.Fatalf("retried redirect counter = %d, want 1", got)
	}
}

func TestSecondRedirectNotFollowed(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Location", "/hop1")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/hop1", func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Location", "/hop2")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/hop2", func(w http.ResponseWriter, r *http.Request) {
		t.Error("second redirect was followed")
	})
	client, creds, _ := newTestClient(t, mux)
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

	_, err := client.ListTasks(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusTemporaryRedirect {
		t.Fatalf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusTemporaryRedirect)
	}
	if hits != 2 {
		t.Fatalf("dispatched %d requests, want 2", hits)
	}
}

func TestRedirectWithoutTokenNotRetried(t *testing.T) {
	var hits int
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Location", "/elsewhere")
		w.WriteHeader(http.StatusTemporaryRedirect)
	}))

	_, err := client.ListTasks(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if hits != 1 {
		t.Fatalf("dispatched %d requests, want 1 (no token, no retry)", hits)
	}
}

func TestDevOriginRewrittenOntoBase(t *testing.T) {
	var path string
	client, creds, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

	err := client.do(context.Background(), call{method: http.MethodGet, path: "http://localhost:8000/tasks/"})
	if err != nil {
		t.Fatalf("do() error: %v", err)
	}
	if path != "/tasks/" {
		t.Fatalf("rewritten request hit %q on %s, want /tasks/", path, srv.URL)
	}
}

func TestAPIErrorSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
	}
	for _, tt := range tests {
		status := tt.status
		client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"detail":"nope"}`))
		}))
		seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

		_, err := client.GetProject(context.Background(), "p1")
		if !errors.Is(err, tt.want) {
			t.Fatalf("status %d: error = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	token := testToken(t, map[string]any{"user_id": "u77", "username": "asha", "role": "student"})
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("login hit %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": token,
			"token_type":   "bearer",
			"role":         "faculty",
		})
	}))

	sess, err := client.Login(context.Background(), "asha@college.edu", "secret12")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if sess.UserID != "u77" || sess.Username != "asha" {
		t.Fatalf("session identity = %q/%q, want u77/asha", sess.UserID, sess.Username)
	}
	if sess.Role != session.RoleMentor {
		t.Fatalf("role = %q, want mentor (faculty folds into mentor)", sess.Role)
	}
	if !creds.hasCredential() {
		t.Fatal("credential not persisted after login")
	}

	cred, err := creds.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cred.Token != token || cred.Role != string(session.RoleMentor) {
		t.Fatalf("persisted credential = %+v, want token and mentor role", cred)
	}
}

func TestTokenReadFreshPerRequest(t *testing.T) {
	var auths []string
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	first := testToken(t, map[string]any{"user_id": "u1"})
	seedCredential(t, creds, first, session.RoleStudent)

	if _, err := client.ListProjects(context.Background()); err != nil {
		t.Fatalf("first ListProjects() error: %v", err)
	}

	// Rotate persisted state behind the client's back, as a concurrent login
	// in another process would.
	second := testToken(t, map[string]any{"user_id": "u1", "iat": 2})
	seedCredential(t, creds, second, session.RoleStudent)

	if _, err := client.ListProjects(context.Background()); err != nil {
		t.Fatalf("second ListProjects() error: %v", err)
	}

	if auths[0] != "Bearer "+first || auths[1] != "Bearer "+second {
		t.Fatalf("Authorization sequence = %v, want fresh token per request", auths)
	}
}

func TestMoveTaskRejectsUnknownStatus(t *testing.T) {
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend reached with an invalid status")
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

	if _, err := client.MoveTask(context.Background(), "t1", "done"); err == nil {
		t.Fatal("MoveTask() accepted an unknown status")
	}
}

func TestQueryParamEndpoints(t *testing.T) {
	var gotQuery map[string]string
	mux := http.NewServeMux()
	record := func(next func(w http.ResponseWriter)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{}
			for k := range r.URL.Query() {
				gotQuery[k] = r.URL.Query().Get(k)
			}
			next(w)
		}
	}
	mux.HandleFunc("/announcements/", record(func(w http.ResponseWriter) {
		json.NewEncoder(w).Encode(AnnouncementResult{NotificationCount: 3})
	}))
	mux.HandleFunc("/feedback/evaluate", record(func(w http.ResponseWriter) {
		json.NewEncoder(w).Encode(Feedback{ID: "f1", Score: 34})
	}))
	client, creds, _ := newTestClient(t, mux)
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleAdmin)

	result, err := client.CreateAnnouncement(context.Background(), "Round 2", "Friday 10am", "students")
	if err != nil {
		t.Fatalf("CreateAnnouncement() error: %v", err)
	}
	if result.NotificationCount != 3 {
		t.Fatalf("NotificationCount = %d, want 3", result.NotificationCount)
	}
	if gotQuery["title"] != "Round 2" || gotQuery["message"] != "Friday 10am" || gotQuery["audience"] != "students" {
		t.Fatalf("announcement query = %v, want title/message/audience as query params", gotQuery)
	}

	_, err = client.EvaluatePresentation(context.Background(), EvaluationInput{
		PresentationID:          "pr1",
		TechnicalImplementation: 9,
		PresentationClarity:     8,
		ProblemSolving:          9,
		OverallImpression:       8,
	})
	if err != nil {
		t.Fatalf("EvaluatePresentation() error: %v", err)
	}
	if gotQuery["presentation_id"] != "pr1" || gotQuery["technical_implementation"] != "9" {
		t.Fatalf("evaluate query = %v, want rubric scores as query params", gotQuery)
	}
}

func TestStreamReturnsOpenBody(t *testing.T) {
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RolePanel)

	body, header, err := client.DownloadFile(context.Background(), "f1")
	if err != nil {
		t.Fatalf("DownloadFile() error: %v", err)
	}
	defer body.Close()

	if got := header.Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("Content-Type = %q, want application/pdf", got)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, body); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if buf.String() != "%PDF-1.4" {
		t.Fatalf("stream body = %q", buf.String())
	}
}
