package availability

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultCleanupInterval = time.Minute

// Registry hands out one Model per client and drops models that have been idle too long.
// Call Stop during graceful shutdown.
type Registry struct {
	log     *logrus.Logger
	idleTTL time.Duration

	models sync.Map // map[uuid.UUID]*modelWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

type modelWithTimestamp struct {
	model    *Model
	lastUsed atomic.Int64 // Unix nano
}

// NewRegistry starts the background eviction loop. idleTTL <= 0 disables eviction.
func NewRegistry(log *logrus.Logger, idleTTL time.Duration) *Registry {
	r := &Registry{
		log:      log,
		idleTTL:  idleTTL,
		stopChan: make(chan struct{}),
	}

	if idleTTL > 0 {
		interval := defaultCleanupInterval
		if idleTTL < interval {
			interval = idleTTL
		}
		r.wg.Add(1)
		go r.cleanupLoop(interval)
	}

	return r
}

// ForClient returns the client's model, creating it on first use.
func (r *Registry) ForClient(clientID uuid.UUID) *Model {
	now := time.Now()
	value, loaded := r.models.LoadOrStore(clientID, newModelEntry(now))
	entry := value.(*modelWithTimestamp)
	if loaded {
		entry.lastUsed.Store(now.UnixNano())
	}
	return entry.model
}

// newModelEntry stamps lastUsed before the entry becomes visible to evictIdle.
func newModelEntry(now time.Time) *modelWithTimestamp {
	entry := &modelWithTimestamp{model: NewModel()}
	entry.lastUsed.Store(now.UnixNano())
	return entry
}

// Forget drops the client's model immediately.
func (r *Registry) Forget(clientID uuid.UUID) {
	r.models.Delete(clientID)
}

// Len returns the number of live client models.
func (r *Registry) Len() int {
	n := 0
	r.models.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Stop terminates the eviction loop. Safe to call multiple times.
func (r *Registry) Stop() {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
		r.wg.Wait()
		r.log.Info("Availability registry stopped")
	}
}

func (r *Registry) cleanupLoop(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.evictIdle(time.Now())
		}
	}
}

func (r *Registry) evictIdle(now time.Time) int {
	cutoff := now.Add(-r.idleTTL).UnixNano()
	var evicted int

	r.models.Range(func(key, value any) bool {
		entry, ok := value.(*modelWithTimestamp)
		if !ok {
			return true
		}
		if entry.lastUsed.Load() < cutoff {
			r.models.CompareAndDelete(key, value)
			evicted++
		}
		return true
	})

	if evicted > 0 {
		r.log.Debugf("Evicted %d idle availability models", evicted)
	}
	return evicted
}
