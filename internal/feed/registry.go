package feed

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"cookit/internal/domain"
)

type session struct {
	feed     *Feed
	lastUsed time.Time
}

// Registry keeps feeds for clients that cannot hold one themselves, such as
// HTTP callers. Sessions unused for longer than the TTL are closed.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewRegistry(ttl, cleanupInterval time.Duration, logger *slog.Logger) *Registry {
	r := &Registry{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
		stop:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		r.wg.Add(1)
		go r.cleanupExpired(cleanupInterval)
	}

	return r
}

// Add registers f and returns its session ID.
func (r *Registry) Add(f *Feed) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.sessions[id] = &session{feed: f, lastUsed: r.now()}
	r.mu.Unlock()

	r.logger.Debug("feed session created", "feed_id", id, "mode", f.Mode())
	return id
}

// Get returns the feed for id and marks the session as used.
func (r *Registry) Get(id string) (*Feed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrFeedNotFound
	}
	s.lastUsed = r.now()
	return s.feed, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return domain.ErrFeedNotFound
	}
	s.feed.Close()
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep closes and removes expired sessions and returns how many it removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Feed
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			expired = append(expired, s.feed)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, f := range expired {
		f.Close()
	}
	if len(expired) > 0 {
		r.logger.Info("expired feed sessions", "count", len(expired))
	}
	return len(expired)
}

// Close stops the cleanup loop and closes every remaining feed.
func (r *Registry) Close() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	r.wg.Wait()

	r.mu.Lock()
	feeds := make([]*Feed, 0, len(r.sessions))
	for id, s := range r.sessions {
		feeds = append(feeds, s.feed)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, f := range feeds {
		f.Close()
	}
}

func (r *Registry) cleanupExpired(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
