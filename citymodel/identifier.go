package citymodel

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// identifierNamespace roots every GML id hash. It is a fixed, arbitrary
// UUID, not secret: its only job is to separate this package's id space
// from any other UUIDv5 producer that might hash similar strings.
var identifierNamespace = uuid.MustParse("a3b1c0de-2f4a-4c3e-9a7a-5c6d7e8f9a0b")

// Registry hands out deterministic, collision-free GML ids: each id is a
// namespaced UUIDv5 hash of the feature name and a caller-supplied key,
// with a monotonic per-key counter folded into the hashed string so
// repeated resolves against the same key never collide. It is the one
// shared mutable structure the SB transformer owns, and the whole of
// Resolve runs under a single mutex as its critical section.
type Registry struct {
	mu        sync.Mutex
	counters  map[string]int
	issued    map[string]struct{}
	idPrefix  string
}

// NewRegistry builds an empty Registry. idPrefix is config.Parameters'
// gmlIdPrefix, prepended to every id this Registry resolves.
func NewRegistry(idPrefix string) *Registry {
	return &Registry{
		counters: make(map[string]int),
		issued:   make(map[string]struct{}),
		idPrefix: idPrefix,
	}
}

// Resolve returns the GML id for (featureName, hashKey). Calling Resolve
// again with the same (featureName, hashKey) pair returns a distinct id,
// since the counter embedded in the hashed string advances each time —
// callers that want a stable id for one entity must call Resolve exactly
// once per entity and keep the result.
func (r *Registry) Resolve(featureName, hashKey string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.counters[hashKey]
	r.counters[hashKey] = n + 1

	canonical := fmt.Sprintf("%s|%s|%d", featureName, hashKey, n)
	id := r.idPrefix + uuid.NewSHA1(identifierNamespace, []byte(canonical)).String()
	if _, exists := r.issued[id]; exists {
		return "", ErrIdentifierCollision
	}
	r.issued[id] = struct{}{}
	return id, nil
}
