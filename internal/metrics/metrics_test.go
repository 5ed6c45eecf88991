package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("boinc", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("boinc", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("boinc"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("boinc"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("boinc"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}
	if snap := rec.Snapshot("unknown"); snap != (Snapshot{}) {
		t.Fatalf("expected empty snapshot for unknown provider, got %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()

	rec.RecordRateLimit("boinc", 5*time.Second)
	rec.RecordRateLimit("boinc", 0)

	if got := rec.RateLimitHits("boinc"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("boinc"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderTracksRuns(t *testing.T) {
	rec := NewRecorder()

	rec.RecordRun(time.Second, 2, "", nil)
	rec.RecordRun(2*time.Second, 0, "fetch", errors.New("boom"))

	runs := rec.Runs()
	if runs.Runs != 2 || runs.Failures != 1 {
		t.Fatalf("unexpected run counts %+v", runs)
	}
	if runs.LastStage != "fetch" || runs.LastDuration != 2*time.Second {
		t.Fatalf("unexpected last run %+v", runs)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("boinc", time.Millisecond, nil)
	rec.RecordRateLimit("boinc", time.Second)
	rec.RecordRun(time.Second, 1, "", nil)
	if rec.ProviderCalls("boinc") != 0 || rec.Runs().Runs != 0 {
		t.Fatal("expected nil recorder to report zero values")
	}
}

func TestRecorderConcurrentAttempts(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordProviderAttempt("boinc", time.Millisecond, nil)
		}()
	}
	wg.Wait()
	if got := rec.ProviderCalls("boinc"); got != 20 {
		t.Fatalf("expected 20 calls, got %d", got)
	}
}
