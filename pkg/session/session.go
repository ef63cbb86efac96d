// Package session keeps live editor sessions for the HTTP service.
//
// Each [Session] owns one editor controller and the SVG scene it draws to.
// Sessions live in memory only and expire after a period without access;
// nothing is persisted.
//
// # Usage
//
//	store := session.NewMemoryStore(time.Hour, func(id string) session.Editor {
//	    scene := svg.NewScene(1200, 600)
//	    return session.Editor{
//	        Controller: editor.New(editor.WithRenderer(scene)),
//	        Scene:      scene,
//	    }
//	})
//
//	sess, _ := store.Create(ctx)
//	err := sess.Do(func(e session.Editor) error {
//	    e.Controller.AddNode(graph.ColorRed)
//	    return nil
//	})
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/graphsketch/pkg/editor"
	"github.com/matzehuels/graphsketch/pkg/render/svg"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is the idle time after which a session expires.
const DefaultTTL = time.Hour

// Editor is the editor state owned by a session.
type Editor struct {
	Controller *editor.Controller
	Scene      *svg.Scene
}

// Builder creates the editor for a new session.
type Builder func(id string) Editor

// Session is one user's editing session. All access to its editor goes
// through [Session.Do], which serialises events.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	editor    Editor
	expiresAt time.Time
}

func newSession(ttl time.Duration, build Builder, now time.Time) *Session {
	id := uuid.NewString()
	return &Session{
		ID:        id,
		CreatedAt: now,
		editor:    build(id),
		expiresAt: now.Add(ttl),
	}
}

// Do runs fn with exclusive access to the session's editor.
func (s *Session) Do(fn func(e Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.editor)
}

// ExpiresAt returns when the session expires unless accessed again.
func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}

func (s *Session) touch(now time.Time, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = now.Add(ttl)
}
