package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rebeat-kr/souvenir-backend/internal/sketch"
)

var ErrSessionNotFound = errors.New("sketch session not found")

// Session owns one drawing canvas and the payload it last exported. The
// canvas buffer is mutated only through the session.
type Session struct {
	ID      string
	OriginX float64
	OriginY float64

	mu         sync.Mutex
	canvas     *sketch.Canvas
	payload    string
	hasPayload bool
	lastActive time.Time
}

// Pointer applies a pointer event to the session's canvas. Events without a
// usable point (e.g. an empty touch list) are ignored.
func (s *Session) Pointer(kind string, e sketch.PointerEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	switch kind {
	case "down":
		x, y, ok := sketch.SurfaceLocal(e, s.OriginX, s.OriginY)
		if !ok {
			return nil
		}
		s.canvas.BeginStroke(x, y)
	case "move":
		x, y, ok := sketch.SurfaceLocal(e, s.OriginX, s.OriginY)
		if !ok {
			return nil
		}
		s.canvas.ContinueStroke(x, y)
	case "up":
		s.canvas.EndStroke()
	default:
		return fmt.Errorf("unknown pointer event kind %q", kind)
	}

	return nil
}

// SetColor selects the drawing color for subsequent strokes.
func (s *Session) SetColor(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return s.canvas.SetColor(name)
}

// SetWidth selects the brush width preset for subsequent strokes.
func (s *Session) SetWidth(preset string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	return s.canvas.SetWidth(preset)
}

// Clear wipes the canvas and drops the exported payload.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	s.canvas.Clear()
}

// Payload returns the last exported image payload, if any.
func (s *Session) Payload() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payload, s.hasPayload
}

// export is the canvas callback. An empty payload means the canvas was
// cleared and no image is available.
func (s *Session) export(payload string) {
	if payload == "" {
		s.payload = ""
		s.hasPayload = false
		return
	}
	s.payload = payload
	s.hasPayload = true
}

// Store keeps the live sketch sessions in memory and drops the ones left
// idle past the TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	idleTTL  time.Duration
}

// NewStore creates a session store with the given idle TTL.
func NewStore(idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
	}
}

// Create allocates a new canvas session. Non-positive dimensions produce a
// no-op surface, matching the canvas contract.
func (s *Store) Create(width, height int, scale, originX, originY float64) *Session {
	sess := &Session{
		ID:         uuid.New().String(),
		OriginX:    originX,
		OriginY:    originY,
		lastActive: time.Now(),
	}
	sess.canvas = sketch.NewCanvas(width, height, scale, sess.export)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get retrieves a session by ID.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep removes sessions idle past the TTL and returns how many were
// dropped. Run periodically from a cron job.
func (s *Store) Sweep() int {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
