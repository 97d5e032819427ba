package redis

import (
	"testing"
	"time"
)

func TestNewDedupChecker_DefaultTTL(t *testing.T) {
	if d := NewDedupChecker(nil, 0); d.ttl != dedupTTL {
		t.Fatalf("expected default ttl %v, got %v", dedupTTL, d.ttl)
	}
	if d := NewDedupChecker(nil, time.Minute); d.ttl != time.Minute {
		t.Fatalf("expected custom ttl, got %v", d.ttl)
	}
}

func TestDedupChecker_Key(t *testing.T) {
	d := NewDedupChecker(nil, 0)
	if got := d.key("abc"); got != "dedup:task:abc" {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNewTaskQueue_DefaultKey(t *testing.T) {
	if q := NewTaskQueue(nil, ""); q.key != DefaultQueueKey {
		t.Fatalf("expected default key, got %q", q.key)
	}
}
