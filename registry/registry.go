// Package registry keeps a bounded cache of built textures so hosts
// can reuse pyramids across frames without holding every texture
// they ever constructed. Derived mip data is the expensive part; the
// LRU bound keeps its total memory predictable.
package registry

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/softrender/miptex/texture"
)

// Registry is an LRU-bounded store of textures keyed by string.
// It is safe for concurrent use as long as the stored textures are
// not mutated while cached (the same read-only rule Evaluate has).
type Registry struct {
	cache *lru.Cache
}

// New returns a registry holding at most capacity textures.
func New(capacity int) (*Registry, error) {
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return &Registry{cache: cache}, nil
}

// Lookup returns the cached texture for key, if present.
func (r *Registry) Lookup(key string) (texture.Texture, bool) {
	val, ok := r.cache.Get(key)
	if !ok {
		return nil, false
	}
	return val.(texture.Texture), true
}

// Store caches tex under key, evicting the least recently used entry
// when the registry is full.
func (r *Registry) Store(key string, tex texture.Texture) {
	r.cache.Add(key, tex)
}

// GetOrBuild returns the texture cached under key, or builds, caches
// and returns a new one.
func (r *Registry) GetOrBuild(key string, build func() texture.Texture) texture.Texture {
	if tex, ok := r.Lookup(key); ok {
		return tex
	}
	tex := build()
	r.cache.Add(key, tex)
	return tex
}

// Invalidate drops the entry for key, if present. Hosts call this
// after mutating a source image so the next GetOrBuild rebuilds.
func (r *Registry) Invalidate(key string) {
	r.cache.Remove(key)
}

// Len returns the number of cached textures.
func (r *Registry) Len() int {
	return r.cache.Len()
}
