// Command pmcli-loadtest hammers the gateway client to measure its overhead.
// Without -target it spins up an in-process fake backend, so the numbers
// isolate client-side cost (auth policy, redirect handling, JSON decode) from
// the network.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	pmclient "github.com/Nikhilraj155/project-managment"
	"github.com/Nikhilraj155/project-managment/session"
)

func main() {
	var (
		concurrency = flag.Int("concurrency", 64, "number of concurrent workers")
		ops         = flag.Int("ops", 50000, "operations per phase (list + move)")
		target      = flag.String("target", "", "backend base URL; if empty an in-process fake backend is used")
		tasks       = flag.Int("tasks", 500, "tasks seeded into the fake backend")
	)
	flag.Parse()

	if *concurrency <= 0 || *ops <= 0 || *tasks <= 0 {
		fmt.Fprintln(os.Stderr, "concurrency, ops, and tasks must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	base := *target
	var cleanup func()
	if base == "" {
		backend := httptest.NewServer(newFakeBackend(*tasks))
		base = backend.URL
		cleanup = backend.Close
		fmt.Printf("using in-process backend at %s\n", base)
	} else {
		cleanup = func() {}
		fmt.Printf("using backend at %s\n", base)
	}
	defer cleanup()

	creds := &staticCredentials{token: loadtestToken()}
	client, err := pmclient.New().
		WithConfig(pmclient.Config{DevBaseURL: base}).
		WithCredentials(creds).
		WithLogger(zerolog.Nop()).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build client: %v\n", err)
		os.Exit(1)
	}

	taskIDs, err := seedTaskIDs(ctx, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed task ids: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("working against %d tasks\n", len(taskIDs))

	listStats := runPhase(ctx, *ops, *concurrency, func(r *rand.Rand) error {
		_, err := client.ListTasks(ctx)
		return err
	})
	moveStats := runPhase(ctx, *ops, *concurrency, func(r *rand.Rand) error {
		id := taskIDs[r.Intn(len(taskIDs))]
		status := []string{pmclient.TaskPending, pmclient.TaskInProgress, pmclient.TaskCompleted}[r.Intn(3)]
		_, err := client.MoveTask(ctx, id, status)
		return err
	})

	fmt.Println("---- results ----")
	printStats("list", listStats)
	printStats("move", moveStats)
}

func seedTaskIDs(ctx context.Context, client *pmclient.Client) ([]string, error) {
	tasks, err := client.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("backend has no tasks to work against")
	}
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids, nil
}

func runPhase(ctx context.Context, ops, concurrency int, op func(*rand.Rand) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				t0 := time.Now()
				err := op(r)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

// staticCredentials avoids file IO on the hot path; the token never rotates
// during a run.
type staticCredentials struct {
	token string
}

func (s *staticCredentials) Load(context.Context) (session.Credential, error) {
	return session.Credential{Token: s.token, Role: string(session.RoleAdmin)}, nil
}

func (s *staticCredentials) Store(context.Context, session.Credential) error { return nil }
func (s *staticCredentials) Clear(context.Context) error                     { return nil }

func loadtestToken() string {
	enc := func(v any) string {
		raw, _ := json.Marshal(v)
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	claims := map[string]any{"user_id": "load-1", "username": "loadtest", "role": "admin"}
	return enc(header) + "." + enc(claims) + "." + base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

// fakeBackend serves the two endpoints the phases hit, from memory.
type fakeBackend struct {
	mu    sync.RWMutex
	tasks map[string]pmclient.Task
	order []string
}

func newFakeBackend(n int) http.Handler {
	fb := &fakeBackend{tasks: make(map[string]pmclient.Task, n)}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("task-%d", i)
		fb.tasks[id] = pmclient.Task{ID: id, Title: fmt.Sprintf("Task %d", i), Status: pmclient.TaskPending}
		fb.order = append(fb.order, id)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks/", fb.list)
	mux.HandleFunc("GET /tasks/{id}", fb.get)
	mux.HandleFunc("PUT /tasks/{id}", fb.update)
	return mux
}

func (fb *fakeBackend) list(w http.ResponseWriter, r *http.Request) {
	fb.mu.RLock()
	out := make([]pmclient.Task, 0, len(fb.order))
	for _, id := range fb.order {
		out = append(out, fb.tasks[id])
	}
	fb.mu.RUnlock()
	json.NewEncoder(w).Encode(out)
}

func (fb *fakeBackend) get(w http.ResponseWriter, r *http.Request) {
	fb.mu.RLock()
	task, ok := fb.tasks[r.PathValue("id")]
	fb.mu.RUnlock()
	if !ok {
		http.Error(w, `{"detail":"Task not found"}`, http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(task)
}

func (fb *fakeBackend) update(w http.ResponseWriter, r *http.Request) {
	var input pmclient.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, `{"detail":"bad body"}`, http.StatusBadRequest)
		return
	}
	fb.mu.Lock()
	task, ok := fb.tasks[r.PathValue("id")]
	if ok {
		task.Title = input.Title
		task.Status = input.Status
		fb.tasks[task.ID] = task
	}
	fb.mu.Unlock()
	if !ok {
		http.Error(w, `{"detail":"Task not found"}`, http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(task)
}
