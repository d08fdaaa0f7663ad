package gateway

import (
	"sync"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	snap := m.GetSnapshot()
	if snap.Requests != 0 || snap.Failures != 0 || snap.Superseded != 0 {
		t.Errorf("Expected zeroed counters, got %+v", snap)
	}
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestIncFailures_TracksUnauthorized(t *testing.T) {
	m := NewMetrics()

	m.IncFailures(KindNetwork)
	m.IncFailures(KindUnauthorized)
	m.IncFailures(KindUnauthorized)

	snap := m.GetSnapshot()
	if snap.Failures != 3 {
		t.Errorf("Failures = %d, want 3", snap.Failures)
	}
	if snap.Unauthorized != 2 {
		t.Errorf("Unauthorized = %d, want 2", snap.Unauthorized)
	}
}

func TestMetrics_ConcurrentIncrements(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncRequests()
			m.IncSuperseded()
		}()
	}
	wg.Wait()

	snap := m.GetSnapshot()
	if snap.Requests != 50 {
		t.Errorf("Requests = %d, want 50", snap.Requests)
	}
	if snap.Superseded != 50 {
		t.Errorf("Superseded = %d, want 50", snap.Superseded)
	}
}
