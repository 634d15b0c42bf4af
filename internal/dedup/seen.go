package dedup

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type state int

const (
	stateProcessing state = iota
	stateDelivered
)

type entry struct {
	id        string
	state     state
	createdAt time.Time
	elem      *list.Element
}

// Seen remembers which payment ids were already delivered. The set is bounded:
// once capacity is reached the oldest delivered id is forgotten. A capacity of
// zero or less disables suppression entirely.
type Seen struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*entry
	order    *list.List
	now      func() time.Time
}

func NewSeen(capacity int, ttl time.Duration) *Seen {
	return &Seen{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*entry),
		order:    list.New(),
		now:      time.Now,
	}
}

func (s *Seen) Enabled() bool {
	return s.capacity > 0
}

// Reserve claims id for processing. It returns false when id was already
// delivered or another caller is processing it right now.
func (s *Seen) Reserve(id string) bool {
	if !s.Enabled() {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok {
		if e.state == stateDelivered && s.expired(e) {
			s.remove(e)
		} else {
			return false
		}
	}
	s.entries[id] = &entry{id: id, state: stateProcessing, createdAt: s.now()}
	return true
}

// Commit marks a reserved id as delivered.
func (s *Seen) Commit(id string) {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &entry{id: id}
		s.entries[id] = e
	}
	if e.elem != nil {
		s.order.Remove(e.elem)
	}
	e.state = stateDelivered
	e.createdAt = s.now()
	e.elem = s.order.PushBack(e)

	for s.order.Len() > s.capacity {
		oldest := s.order.Front().Value.(*entry)
		s.remove(oldest)
	}
}

// Release drops a reservation that did not end in delivery so a later
// notification for the same payment is processed again.
func (s *Seen) Release(id string) {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok && e.state == stateProcessing {
		delete(s.entries, id)
	}
}

func (s *Seen) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// StartSweeper evicts expired delivered ids every interval until ctx is done.
func (s *Seen) StartSweeper(ctx context.Context, interval time.Duration) {
	if !s.Enabled() || s.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Seen) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for e := s.order.Front(); e != nil; {
		next := e.Next()
		if ent := e.Value.(*entry); s.expired(ent) {
			s.remove(ent)
			evicted++
		}
		e = next
	}
	if evicted > 0 {
		logrus.Debugf("sweeper evicted %d delivered payment ids", evicted)
	}
	return evicted
}

func (s *Seen) expired(e *entry) bool {
	return s.ttl > 0 && s.now().Sub(e.createdAt) > s.ttl
}

func (s *Seen) remove(e *entry) {
	if e.elem != nil {
		s.order.Remove(e.elem)
	}
	delete(s.entries, e.id)
}
