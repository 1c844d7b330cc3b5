package rc5

import (
	"github.com/floatdrop/lru"
)

// ScheduleCache memoizes expanded subkey tables for one Cipher, keyed by the
// raw key bytes. A schedule is a pure function of its key, so entries never
// need invalidation, only eviction. Entries are immutable once inserted and
// the cache is safe for concurrent use.
type ScheduleCache[W Word] struct {
	cipher *Cipher[W]
	cache  *lru.LRU[string, *Schedule[W]]
}

// NewScheduleCache returns a cache holding up to size schedules for c.
func NewScheduleCache[W Word](c *Cipher[W], size int) *ScheduleCache[W] {
	return &ScheduleCache[W]{
		cipher: c,
		cache:  lru.New[string, *Schedule[W]](size),
	}
}

// ExpandKey returns the cached schedule for key, expanding and inserting it
// on a miss.
func (sc *ScheduleCache[W]) ExpandKey(key []byte) (*Schedule[W], error) {
	if e := sc.cache.Get(string(key)); e != nil {
		return *e, nil
	}
	s, err := sc.cipher.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	sc.cache.Set(string(key), s)
	return s, nil
}
