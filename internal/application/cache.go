package application

import (
	"strings"
	"sync"

	"github.com/projetvet/projetvet-go/internal/domain/schema"
)

// StructureCache holds immutable structure snapshots keyed by form-set
// idnumber plus locale. Invalidation is explicit: the importer purges
// after every schema change; nothing expires on its own.
type StructureCache struct {
	mu    sync.RWMutex
	items map[string][]schema.Category
}

func NewStructureCache() *StructureCache {
	return &StructureCache{items: make(map[string][]schema.Category)}
}

func cacheKey(formset, locale string) string {
	return formset + "|" + locale
}

func (c *StructureCache) Get(formset, locale string) ([]schema.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cats, ok := c.items[cacheKey(formset, locale)]
	return cats, ok
}

func (c *StructureCache) Set(formset, locale string, cats []schema.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[cacheKey(formset, locale)] = cats
}

// Invalidate drops every locale's snapshot for one form set.
func (c *StructureCache) Invalidate(formset string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := formset + "|"
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

func (c *StructureCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string][]schema.Category)
}
