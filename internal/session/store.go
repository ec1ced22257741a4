// Package session holds the per-conversation "current document" context.
package session

import (
	"container/list"
	"hash/fnv"
	"sync"
	"time"

	"github.com/jmfontan/docchat-server/internal/model"
)

const shardCount = 16

var _ model.ContextStore = (*Store)(nil)

// Store is a bounded in-memory context store. Entries are sharded by session
// ID so unrelated sessions never serialize on one lock. Each shard evicts its
// least-recently-used entry when over capacity, and entries older than the
// TTL expire on access.
type Store struct {
	shards      [shardCount]shard
	perShardCap int
	ttl         time.Duration

	now func() time.Time
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = most recently used
}

type entry struct {
	sessionID string
	ctx       model.SessionContext
}

// NewStore creates a Store. capacity bounds the total number of tracked
// sessions (0 = unbounded); ttl expires entries not accessed for that long
// (0 = no expiry).
func NewStore(capacity int, ttl time.Duration) *Store {
	s := &Store{ttl: ttl, now: time.Now}
	if capacity > 0 {
		s.perShardCap = (capacity + shardCount - 1) / shardCount
	}
	for i := range s.shards {
		s.shards[i].entries = make(map[string]*list.Element)
		s.shards[i].order = list.New()
	}
	return s
}

// Get returns the session's current document context. Expired entries are
// dropped and reported as absent.
func (s *Store) Get(sessionID string) (model.SessionContext, bool) {
	sh := s.shard(sessionID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	el, ok := sh.entries[sessionID]
	if !ok {
		return model.SessionContext{}, false
	}

	e := el.Value.(*entry)
	now := s.now()
	if s.ttl > 0 && now.Sub(e.ctx.LastAccess) > s.ttl {
		sh.order.Remove(el)
		delete(sh.entries, sessionID)
		return model.SessionContext{}, false
	}

	e.ctx.LastAccess = now
	sh.order.MoveToFront(el)
	return e.ctx, true
}

// Set records the session's current document, overwriting any previous
// context and creating the session entry if absent.
func (s *Store) Set(sessionID string, documentID int64, documentName string) {
	sh := s.shard(sessionID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	ctx := model.SessionContext{
		DocumentID:   documentID,
		DocumentName: documentName,
		LastAccess:   s.now(),
	}

	if el, ok := sh.entries[sessionID]; ok {
		el.Value.(*entry).ctx = ctx
		sh.order.MoveToFront(el)
		return
	}

	sh.entries[sessionID] = sh.order.PushFront(&entry{sessionID: sessionID, ctx: ctx})

	if s.perShardCap > 0 && sh.order.Len() > s.perShardCap {
		oldest := sh.order.Back()
		if oldest != nil {
			sh.order.Remove(oldest)
			delete(sh.entries, oldest.Value.(*entry).sessionID)
		}
	}
}

// Len returns the number of tracked sessions across all shards.
func (s *Store) Len() int {
	total := 0
	for i := range s.shards {
		s.shards[i].mu.Lock()
		total += s.shards[i].order.Len()
		s.shards[i].mu.Unlock()
	}
	return total
}

func (s *Store) shard(sessionID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &s.shards[h.Sum32()%shardCount]
}
