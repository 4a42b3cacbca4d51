package pmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Nikhilraj155/project-managment/session"
)

func TestWatchUnreadCountDeliversChangesOnly(t *testing.T) {
	var polls int64
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&polls, 1)
		// Same value twice, then a change.
		count := 2
		if n >= 3 {
			count = 5
		}
		json.NewEncoder(w).Encode(map[string]int{"unread_count": count})
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan int, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		client.WatchUnreadCount(ctx, 5*time.Millisecond, func(count int) {
			got <- count
		})
	}()

	waitFor := func(want int) {
		t.Helper()
		select {
		case count := <-got:
			if count != want {
				t.Fatalf("delivered count = %d, want %d", count, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for count %d", want)
		}
	}
	waitFor(2)
	waitFor(5)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on cancellation")
	}
}

func TestWatchTeamChatDeliversNewMessages(t *testing.T) {
	var polls int64
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&polls, 1)
		messages := []ChatMessage{{ID: "m1", Content: "hello"}}
		if n >= 2 {
			messages = append(messages, ChatMessage{ID: "m2", Content: "standup at 5"})
		}
		json.NewEncoder(w).Encode(messages)
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan []ChatMessage, 8)
	go client.WatchTeamChat(ctx, "team1", 5*time.Millisecond, func(messages []ChatMessage) {
		got <- messages
	})

	next := func() []ChatMessage {
		t.Helper()
		select {
		case messages := <-got:
			return messages
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for messages")
			return nil
		}
	}

	first := next()
	if len(first) != 1 || first[0].ID != "m1" {
		t.Fatalf("first delivery = %+v, want just m1", first)
	}
	second := next()
	if len(second) != 1 || second[0].ID != "m2" {
		t.Fatalf("second delivery = %+v, want just the new m2", second)
	}
}

func TestWatchSwallowsPollErrors(t *testing.T) {
	var polls int64
	client, creds, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&polls, 1)
		if n == 1 {
			http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]int{"unread_count": 1})
	}))
	seedCredential(t, creds, testToken(t, map[string]any{"user_id": "u1"}), session.RoleStudent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan int, 1)
	go client.WatchUnreadCount(ctx, 5*time.Millisecond, func(count int) {
		select {
		case got <- count:
		default:
		}
	})

	select {
	case count := <-got:
		if count != 1 {
			t.Fatalf("count = %d, want 1", count)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher died on a failed poll instead of continuing")
	}
}
