package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterVecValue(cv *prometheus.CounterVec, label string) float64 {
	c, err := cv.GetMetricWithLabelValues(label)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// useIsolatedRegistry points the entries collectors at a fresh registry for one test.
func useIsolatedRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	previous := registerer
	registerer = reg
	t.Cleanup(func() { registerer = previous })
	return reg
}

func newInstrumentedTestCache(t *testing.T, group string, size int) Cache {
	t.Helper()
	c, err := New("memory", ProviderConfig{Size: size, TTL: time.Hour, Group: group})
	if err != nil {
		t.Fatalf("New instrumented cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestInstrumentedCache_HitsAndMisses(t *testing.T) {
	useIsolatedRegistry(t)
	c := newInstrumentedTestCache(t, "test-hits", 10)

	hits := getCounterVecValue(HitsTotal, "test-hits")
	misses := getCounterVecValue(MissesTotal, "test-hits")

	c.Set("k", []byte("v"))
	_, _ = c.Get("k")
	_, _ = c.Get("absent")

	if got := getCounterVecValue(HitsTotal, "test-hits"); got != hits+1 {
		t.Errorf("hits diff = %.0f, want 1", got-hits)
	}
	if got := getCounterVecValue(MissesTotal, "test-hits"); got != misses+1 {
		t.Errorf("misses diff = %.0f, want 1", got-misses)
	}
}

func TestInstrumentedCache_Evictions(t *testing.T) {
	useIsolatedRegistry(t)
	c := newInstrumentedTestCache(t, "test-evictions", 1)

	before := getCounterVecValue(EvictionsTotal, "test-evictions")
	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	if got := getCounterVecValue(EvictionsTotal, "test-evictions"); got != before+1 {
		t.Errorf("evictions diff = %.0f, want 1", got-before)
	}
}

func TestInstrumentedCache_EntriesGauge(t *testing.T) {
	reg := useIsolatedRegistry(t)
	c := newInstrumentedTestCache(t, "test-entries", 10)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var found bool
	for _, mf := range families {
		if mf.GetName() != "torec_cache_entries" {
			continue
		}
		for _, m := range mf.GetMetric() {
			found = true
			if v := m.GetGauge().GetValue(); v != 2 {
				t.Errorf("torec_cache_entries = %.0f, want 2", v)
			}
		}
	}
	if !found {
		t.Fatal("torec_cache_entries not registered")
	}

	_ = c.Close()
	families, _ = reg.Gather()
	for _, mf := range families {
		if mf.GetName() == "torec_cache_entries" {
			t.Error("entries collector should be unregistered after Close")
		}
	}
}

type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Error(string, error) {}

func (l *recordingLogger) Warn(msg string, _ error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func TestInstrumentedCache_EntriesGaugeConflictIsLogged(t *testing.T) {
	reg := useIsolatedRegistry(t)

	// Another collector already owns the gauge for this group.
	taken := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "torec_cache_entries",
		Help:        "Current number of entries in the page cache.",
		ConstLabels: prometheus.Labels{"cache": "test-conflict"},
	})
	if err := reg.Register(taken); err != nil {
		t.Fatalf("Register: %v", err)
	}

	logger := &recordingLogger{}
	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-conflict", Logger: logger})
	if err != nil {
		t.Fatalf("New instrumented cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if len(logger.warns) != 1 {
		t.Fatalf("expected 1 warning, got %v", logger.warns)
	}

	c.Set("a", []byte("1"))
	if v, ok := c.Get("a"); !ok || string(v) != "1" {
		t.Errorf("cache must keep working without its gauge, Get = %q, %v", v, ok)
	}
}
