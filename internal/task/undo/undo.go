// Package undo holds short-lived task snapshots behind single-use tokens so
// destructive operations can be reverted from the UI.
package undo

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Action says what operation produced a snapshot.
type Action string

const (
	ActionDelete Action = "delete"
	ActionUpdate Action = "update"
	ActionStatus Action = "status"
)

// Entry is one stored snapshot. Snapshot holds the task state to restore.
type Entry struct {
	UserID   string
	Action   Action
	Snapshot any
	expires  time.Time
}

// Store is an in-memory TTL token store. Tokens are ULIDs, so they sort by
// creation time, which keeps eviction sweeps cheap.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]Entry
	entropy *rand.Rand
	now     func() time.Time
}

// NewStore creates a Store whose tokens expire after ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]Entry),
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// WithClock overrides the reference clock. Test use only.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Put stores a snapshot and returns its token.
func (s *Store) Put(userID string, action Action, snapshot any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	token := ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
	s.entries[token] = Entry{
		UserID:   userID,
		Action:   action,
		Snapshot: snapshot,
		expires:  now.Add(s.ttl),
	}
	return token
}

// Take removes and returns the entry behind token. Returns false when the
// token is unknown, expired, or belongs to another user.
func (s *Store) Take(userID, token string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok || e.UserID != userID || s.now().After(e.expires) {
		delete(s.entries, token)
		return Entry{}, false
	}
	delete(s.entries, token)
	return e, true
}

// Len reports live (possibly expired but unswept) entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// sweep drops expired entries. Caller holds mu.
func (s *Store) sweep(now time.Time) {
	for token, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, token)
		}
	}
}
