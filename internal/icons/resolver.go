package icons

import (
	"strings"
	"sync"
)

// Resolver memoizes registry lookups. The cache is append-only: the registry
// is immutable, so a cached handle can never go stale and entries are never
// invalidated. Cache writes are idempotent (the same token always resolves to
// the same handle), so concurrent callers share the resolver without
// coordination beyond the sync.Map itself.
type Resolver struct {
	registry *Registry
	cache    sync.Map // token -> *Icon
}

// NewResolver creates a resolver over the given registry. A nil registry
// falls back to the builtin icon set.
func NewResolver(registry *Registry) *Resolver {
	if registry == nil {
		registry = Builtin()
	}
	return &Resolver{registry: registry}
}

// Resolve maps a symbolic icon token to a handle. Blank tokens return the
// Default handle immediately, bypassing both cache and registry. Unknown
// tokens are cached as Default so repeated lookups stay O(1) after the first.
// Resolve never fails; the worst case is a silent fallback to Default.
func (r *Resolver) Resolve(token string) *Icon {
	if strings.TrimSpace(token) == "" {
		return Default
	}

	if cached, ok := r.cache.Load(token); ok {
		return cached.(*Icon)
	}

	handle, ok := r.registry.Lookup(token)
	if !ok {
		handle = Default
	}
	r.cache.Store(token, handle)
	return handle
}

// CachedTokens returns the number of distinct tokens resolved so far. Growth
// is bounded by the number of distinct tokens ever requested.
func (r *Resolver) CachedTokens() int {
	count := 0
	r.cache.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}
