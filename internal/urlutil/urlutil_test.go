package urlutil

import "testing"

func TestJoin(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"http://localhost:8000", "/tasks/", "http://localhost:8000/tasks/"},
		{"http://localhost:8000/", "/tasks/", "http://localhost:8000/tasks/"},
		{"http://localhost:8000", "tasks/", "http://localhost:8000/tasks/"},
		{"https://api.example.com", "", "https://api.example.com"},
		{"https://api.example.com", "/notifications/unread-count?x=1", "https://api.example.com/notifications/unread-count?x=1"},
	}

	for _, tc := range tests {
		if got := Join(tc.base, tc.path); got != tc.want {
			t.Fatalf("Join(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}

func TestRewriteOrigin(t *testing.T) {
	origins := []string{"http://localhost:8000", "http://127.0.0.1:8000"}
	base := "https://backend.example.com"

	tests := []struct {
		name      string
		raw       string
		want      string
		rewritten bool
	}{
		{
			name:      "dev origin with path and query",
			raw:       "http://localhost:8000/projects/all?limit=5",
			want:      "https://backend.example.com/projects/all?limit=5",
			rewritten: true,
		},
		{
			name:      "loopback origin",
			raw:       "http://127.0.0.1:8000/tasks/",
			want:      "https://backend.example.com/tasks/",
			rewritten: true,
		},
		{
			name:      "bare origin",
			raw:       "http://localhost:8000",
			want:      "https://backend.example.com",
			rewritten: true,
		},
		{
			name:      "unrelated absolute URL untouched",
			raw:       "https://cdn.example.com/file.pdf",
			want:      "https://cdn.example.com/file.pdf",
			rewritten: false,
		},
		{
			name:      "relative path untouched",
			raw:       "/auth/login",
			want:      "/auth/login",
			rewritten: false,
		},
		{
			name:      "longer port not mistaken for dev origin",
			raw:       "http://localhost:80001/x",
			want:      "http://localhost:80001/x",
			rewritten: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, rewritten := RewriteOrigin(tc.raw, origins, base)
			if got != tc.want || rewritten != tc.rewritten {
				t.Fatalf("RewriteOrigin(%q) = (%q, %v), want (%q, %v)", tc.raw, got, rewritten, tc.want, tc.rewritten)
			}
		})
	}
}

func TestIsAbsolute(t *testing.T) {
	if !IsAbsolute("http://localhost:8000/x") {
		t.Fatalf("absolute URL not detected")
	}
	if IsAbsolute("/auth/login") {
		t.Fatalf("relative path misdetected as absolute")
	}
}
