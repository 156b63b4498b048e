package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/openclaw/terminal-qr/matrix"
	"github.com/openclaw/terminal-qr/session"
)

// SessionCookie names the cookie carrying the browser's session id.
const SessionCookie = "tqr_session"

// entry pairs a session with the lock serialising its handlers.
type entry struct {
	mu      sync.Mutex
	session *session.Session
}

// SessionStore keeps one controller session per browser, expiring idle
// ones after the configured TTL.
type SessionStore struct {
	cache   *cache.Cache
	ttl     time.Duration
	encoder matrix.Encoder
	opts    []session.Option
	log     *slog.Logger
	mu      sync.Mutex
}

// NewSessionStore creates a store whose sessions share enc and opts.
func NewSessionStore(ttl, cleanup time.Duration, enc matrix.Encoder, log *slog.Logger, opts ...session.Option) *SessionStore {
	return &SessionStore{
		cache:   cache.New(ttl, cleanup),
		ttl:     ttl,
		encoder: enc,
		opts:    opts,
		log:     log,
	}
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	return s.cache.ItemCount()
}

// acquire returns the caller's session locked, creating it and setting the
// cookie when needed. The returned func unlocks it.
func (s *SessionStore) acquire(w http.ResponseWriter, r *http.Request) (*session.Session, func()) {
	e := s.lookup(w, r)
	e.mu.Lock()
	return e.session, e.mu.Unlock
}

func (s *SessionStore) lookup(w http.ResponseWriter, r *http.Request) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, err := r.Cookie(SessionCookie); err == nil {
		key := sessionKey(c.Value)
		if data, found := s.cache.Get(key); found {
			if e, ok := data.(*entry); ok {
				s.cache.Set(key, e, cache.DefaultExpiration)
				return e
			}
		}
	}

	id := uuid.NewString()
	e := &entry{session: session.New(s.encoder, s.log.With("session", id), s.opts...)}
	s.cache.Set(sessionKey(id), e, cache.DefaultExpiration)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.log.Debug("session created", "session", id)
	return e
}

func sessionKey(id string) string {
	return fmt.Sprintf("session_%s", id)
}
