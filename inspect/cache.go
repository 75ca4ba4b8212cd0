package inspect

import (
	"sync"

	"github.com/tbhb/typegraph/node"
)

// Stats is a snapshot of the process-wide inspection cache.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Size     int
	Capacity int // -1: unbounded
}

var cache = struct {
	mu      sync.Mutex
	entries map[any]*node.Node
	hits    uint64
	misses  uint64
}{entries: map[any]*node.Node{}}

// cachedInspect serves fully-default Inspect calls. The lock is held across
// the whole inspection so concurrent callers asking for the same annotation
// observe one shared graph rather than racing to build two.
func cachedInspect(annotation any, cfg Config) (*node.Node, error) {
	key, keyable := memoKey(annotation)

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if keyable {
		if n, ok := cache.entries[key]; ok {
			cache.hits++
			return n, nil
		}
	}
	cache.misses++

	ins := &inspector{cfg: cfg, log: (&options{cfg: cfg}).logger()}
	n, err := ins.inspect(annotation, newFrame(cfg))
	if err != nil {
		return nil, err
	}
	if keyable {
		cache.entries[key] = n
	}
	return n, nil
}

// CacheStats reports cumulative hit and miss counts and the current size of
// the process-wide cache.
func CacheStats() Stats {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return Stats{
		Hits:     cache.hits,
		Misses:   cache.misses,
		Size:     len(cache.entries),
		Capacity: -1,
	}
}

// ClearCache drops every cached graph and resets the counters. Graphs
// already handed out remain valid; subsequent identical calls build fresh
// ones.
func ClearCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries = map[any]*node.Node{}
	cache.hits = 0
	cache.misses = 0
}
