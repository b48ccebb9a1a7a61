package resource

import "sync"

// Latest remembers the newest request generation per key so a slow answer to
// an older search cannot replace the result of a newer one.
//
// Callers Begin a generation before fetching and check Current after the
// fetch returns; a false Current means a newer request was issued meanwhile.
type Latest struct {
	mu   sync.Mutex
	gens map[string]uint64
	max  int
}

// NewLatest keeps at most maxKeys keys; when full, the map is reset.
func NewLatest(maxKeys int) *Latest {
	if maxKeys <= 0 {
		maxKeys = 10000
	}
	return &Latest{gens: make(map[string]uint64), max: maxKeys}
}

// Begin records gen for key. It reports false when a newer generation is
// already known, in which case the request is stale before it starts.
func (l *Latest) Begin(key string, gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur, ok := l.gens[key]
	if ok && gen < cur {
		return false
	}
	if !ok && len(l.gens) >= l.max {
		clear(l.gens)
	}
	l.gens[key] = gen
	return true
}

// Current reports whether gen is still the newest generation for key. A
// key dropped by a reset counts as current.
func (l *Latest) Current(key string, gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.gens[key]
	return !ok || cur == gen
}
