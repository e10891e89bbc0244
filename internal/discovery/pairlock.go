// internal/discovery/pairlock.go

package discovery

import (
	"hash/fnv"
	"strconv"
	"sync"
)

const pairLockShards = 64

// pairLocks serializes swipe processing per unordered user pair.
// Locks are striped: distinct pairs may share a shard and contend, but
// the same pair always maps to the same mutex regardless of direction.
type pairLocks struct {
	shards [pairLockShards]sync.Mutex
}

func newPairLocks() *pairLocks {
	return &pairLocks{}
}

// Lock acquires the shard for the normalized (a, b) pair and returns
// the matching unlock.
func (p *pairLocks) Lock(a, b int64) func() {
	lo, hi := normalizePair(a, b)

	h := fnv.New32a()
	h.Write([]byte(strconv.FormatInt(lo, 10)))
	h.Write([]byte{':'})
	h.Write([]byte(strconv.FormatInt(hi, 10)))
	shard := &p.shards[h.Sum32()%pairLockShards]

	shard.Lock()
	return shard.Unlock
}
