package mcpserver

import (
	"sync"
	"time"

	"github.com/macroplate/macroplate/internal/orders"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/rs/xid"
)

// session is one remote checkout. The controller is not safe for concurrent
// use, so every access goes through mu.
type session struct {
	mu        sync.Mutex
	id        string
	ctrl      *signup.Controller
	receipt   *orders.Receipt
	submitErr string
	lastUsed  time.Time // Guarded by registry.mu
}

// registry maps session ids to sessions. It is the only state shared
// between tool calls.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session), now: time.Now}
}

func (r *registry) create(catalog signup.Catalog, rules signup.RecommendationRules) (*session, error) {
	ctrl, err := signup.NewController(catalog, rules)
	if err != nil {
		return nil, err
	}
	sess := &session{
		id:   xid.New().String(),
		ctrl: ctrl,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	sess.lastUsed = r.now()
	r.sessions[sess.id] = sess
	return sess, nil
}

func (r *registry) get(id string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sess, ok := r.sessions[id]
	if ok {
		sess.lastUsed = r.now()
	}
	return sess, ok
}

func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

func (r *registry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// clear drops every session and returns how many there were.
func (r *registry) clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.sessions)
	r.sessions = make(map[string]*session)
	return n
}

// evictIdle drops sessions not used for longer than idle and returns their
// ids.
func (r *registry) evictIdle(idle time.Duration) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-idle)
	var evicted []string
	for id, sess := range r.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(r.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}
