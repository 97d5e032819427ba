package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ryde/user-graph/internal/core/domain"
)

type recordingService struct {
	mu    sync.Mutex
	seen  map[string][]string
	fails map[string]bool
}

func newRecordingService() *recordingService {
	return &recordingService{seen: map[string][]string{}, fails: map[string]bool{}}
}

func (s *recordingService) Process(_ context.Context, task domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[task.UserID] = append(s.seen[task.UserID], task.ID)
	if s.fails[task.ID] {
		return errors.New("boom")
	}
	return nil
}

type recordingReporter struct {
	mu   sync.Mutex
	tags []map[string]string
}

func (r *recordingReporter) CaptureError(_ error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tags)
}

func TestDispatcher_PreservesPerUserOrder(t *testing.T) {
	svc := newRecordingService()
	d := NewDispatcher(4, svc, nil, zerolog.Nop())
	d.Start(context.Background())

	users := []string{"alice", "bob", "carol"}
	for i := 0; i < 50; i++ {
		for _, u := range users {
			d.Enqueue(domain.Task{ID: fmt.Sprintf("%s-%02d", u, i), UserID: u, Type: domain.TaskWelcomeUser})
		}
	}
	d.Close()

	for _, u := range users {
		got := svc.seen[u]
		if len(got) != 50 {
			t.Fatalf("user %s: expected 50 tasks, got %d", u, len(got))
		}
		for i, id := range got {
			want := fmt.Sprintf("%s-%02d", u, i)
			if id != want {
				t.Fatalf("user %s: task %d out of order: got %s want %s", u, i, id, want)
			}
		}
	}
}

func TestDispatcher_ReportsFailures(t *testing.T) {
	svc := newRecordingService()
	svc.fails["t2"] = true
	reporter := &recordingReporter{}
	d := NewDispatcher(2, svc, reporter, zerolog.Nop())
	d.Start(context.Background())

	d.Enqueue(domain.Task{ID: "t1", UserID: "alice", Type: domain.TaskWelcomeUser})
	d.Enqueue(domain.Task{ID: "t2", UserID: "alice", Type: domain.TaskLocationUpdated})
	d.Close()

	if len(reporter.tags) != 1 {
		t.Fatalf("expected one reported failure, got %d", len(reporter.tags))
	}
	if reporter.tags[0]["task_type"] != string(domain.TaskLocationUpdated) {
		t.Fatalf("unexpected tags: %v", reporter.tags[0])
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(), nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	first := d.shardIndex("alice")
	for i := 0; i < 10; i++ {
		if d.shardIndex("alice") != first {
			t.Fatalf("shard index changed between calls")
		}
	}
}
