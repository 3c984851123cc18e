package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultSessionTTL = 15 * time.Minute
	maxStepsPerCall   = 500

	sessionLockKeyFmt = "maze:session:%s:lock"
)

var (
	ErrSessionNotFound = dmn.ErrSessionNotFound
)

// session is a driver rebuilt from, or advanced past, the stored state of a run.
type session struct {
	driver     *maze.Driver
	state      *dmn.SessionState
	lastActive time.Time
}

// SessionManager runs incremental generation sessions. The SessionStore holds
// each run's resolved options and step count, so any instance can serve any
// session: a driver missing locally, or behind the stored step count, is
// rebuilt by replaying the run. Drivers are only touched while the session's
// Locker key is held, so a session's grid only ever has one writer.
type SessionManager struct {
	sessions  map[uuid.UUID]*session // Local drivers, a cache over store.
	mazes     *MazeService
	store     i.SessionStore
	tokenizer i.Tokenizer
	locker    i.Locker
	ttl       time.Duration
	logger    *log.Logger
	now       func() time.Time
	sync.RWMutex
}

// SessionConfig holds the dependencies of a SessionManager.
type SessionConfig struct {
	Mazes     *MazeService
	Store     i.SessionStore
	Tokenizer i.Tokenizer
	Locker    i.Locker
	TTL       time.Duration
	Logger    *log.Logger
}

// NewSessionManager creates a SessionManager.
func NewSessionManager(c *SessionConfig) (*SessionManager, error) {
	if c.Mazes == nil || c.Store == nil || c.Tokenizer == nil || c.Locker == nil || c.Logger == nil {
		return nil, errors.New("session manager requires a maze service, a store, a tokenizer, a locker and a logger")
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionManager{
		sessions:  make(map[uuid.UUID]*session),
		mazes:     c.Mazes,
		store:     c.Store,
		tokenizer: c.Tokenizer,
		locker:    c.Locker,
		ttl:       ttl,
		logger:    c.Logger,
		now:       time.Now,
	}, nil
}

// Open starts a new run and issues the token that controls it.
func (sm *SessionManager) Open(ctx context.Context, opts dmn.MazeOptions) (uuid.UUID, string, maze.Layout, error) {
	now := sm.now()
	resolved := sm.mazes.defaults.resolve(opts, now)
	driver, err := newDriver(resolved, sm.logger)
	if err != nil {
		return uuid.Nil, "", maze.Layout{}, err
	}
	if err := driver.Start(); err != nil {
		return uuid.Nil, "", maze.Layout{}, err
	}

	id := uuid.New()
	token, err := sm.tokenizer.Issue(id, sm.ttl)
	if err != nil {
		sm.logger.Printf("%s[ERROR]%s issuing session token: %s", config.LogErrorColor, config.LogColorReset, err)
		return uuid.Nil, "", maze.Layout{}, err
	}

	state := &dmn.SessionState{ID: id, Options: resolved, LastActive: now}
	if err := sm.store.Put(ctx, state, sm.ttl); err != nil {
		sm.logger.Printf("%s[ERROR]%s storing session %s: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return uuid.Nil, "", maze.Layout{}, fmt.Errorf("storing session: %w", err)
	}

	sm.Lock()
	sm.sweep(now)
	sm.sessions[id] = &session{driver: driver, state: state, lastActive: now}
	sm.Unlock()

	sm.logger.Printf("%s[INFO]%s opened session %s", config.LogInfoColor, config.LogColorReset, id)
	return id, token, driver.Layout(), nil
}

// Step advances the session by up to n steps, clamped to [1, maxStepsPerCall].
// When the maze completes it is stored under the session ID and the session
// closes. If storing the finished maze fails the session stays open, so the
// call can be retried without losing the maze.
func (sm *SessionManager) Step(ctx context.Context, id uuid.UUID, n int) (maze.Layout, bool, error) {
	n = max(1, min(n, maxStepsPerCall))

	unlock, err := sm.locker.Lock(ctx, fmt.Sprintf(sessionLockKeyFmt, id))
	if err != nil {
		return maze.Layout{}, false, err
	}
	defer unlock()

	s, err := sm.load(ctx, id)
	if err != nil {
		return maze.Layout{}, false, err
	}

	// A finished driver is one whose maze could not be saved yet.
	done := !s.driver.Running()
	for step := 0; step < n && !done; step++ {
		done, err = s.driver.Step()
		if err != nil {
			sm.drop(ctx, id)
			sm.logger.Printf("%s[ERROR]%s stepping session %s: %s", config.LogErrorColor, config.LogColorReset, id, err)
			return maze.Layout{}, false, err
		}
	}

	layout := s.driver.Layout()
	if err := sm.save(ctx, s, layout.Steps); err != nil {
		return layout, done, err
	}
	if !done {
		return layout, false, nil
	}

	record := &dmn.MazeRecord{
		ID:        id,
		Seed:      s.state.Options.Seed,
		Layout:    layout,
		CreatedAt: sm.now().UTC(),
	}
	if err := sm.mazes.Save(ctx, record); err != nil {
		return layout, true, err
	}
	sm.drop(ctx, id)
	sm.logger.Printf("%s[INFO]%s session %s finished after %d steps", config.LogInfoColor, config.LogColorReset, id, layout.Steps)
	return layout, true, nil
}

// Abandon discards a run in progress.
func (sm *SessionManager) Abandon(ctx context.Context, id uuid.UUID) error {
	unlock, err := sm.locker.Lock(ctx, fmt.Sprintf(sessionLockKeyFmt, id))
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := sm.store.Get(ctx, id); err != nil {
		if errors.Is(err, dmn.ErrSessionNotFound) {
			sm.forget(id)
		}
		return err
	}

	sm.Lock()
	if s, ok := sm.sessions[id]; ok {
		s.driver.Abandon()
	}
	sm.Unlock()

	if err := sm.drop(ctx, id); err != nil {
		return err
	}
	sm.logger.Printf("%s[INFO]%s abandoned session %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

// Count returns the number of locally held sessions.
func (sm *SessionManager) Count() int {
	sm.RLock()
	defer sm.RUnlock()
	return len(sm.sessions)
}

// load returns the session for id, replaying it from the store when the
// local driver is missing or behind. Callers hold the session's lock.
func (sm *SessionManager) load(ctx context.Context, id uuid.UUID) (*session, error) {
	state, err := sm.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, dmn.ErrSessionNotFound) {
			sm.forget(id)
		}
		return nil, err
	}

	now := sm.now()
	if now.Sub(state.LastActive) > sm.ttl {
		sm.drop(ctx, id)
		sm.logger.Printf("%s[INFO]%s expired session %s", config.LogInfoColor, config.LogColorReset, id)
		return nil, dmn.ErrSessionNotFound
	}

	sm.Lock()
	sm.sweep(now)
	s, ok := sm.sessions[id]
	if ok && s.driver.Steps() == state.Steps {
		s.state, s.lastActive = state, now
		sm.Unlock()
		return s, nil
	}
	sm.Unlock()

	driver, err := sm.replay(state)
	if err != nil {
		sm.logger.Printf("%s[ERROR]%s replaying session %s: %s", config.LogErrorColor, config.LogColorReset, id, err)
		return nil, err
	}
	s = &session{driver: driver, state: state, lastActive: now}

	sm.Lock()
	sm.sessions[id] = s
	sm.Unlock()
	return s, nil
}

// replay rebuilds a driver by running state.Steps steps from its options.
func (sm *SessionManager) replay(state *dmn.SessionState) (*maze.Driver, error) {
	driver, err := newDriver(state.Options, sm.logger)
	if err != nil {
		return nil, err
	}
	if err := driver.Start(); err != nil {
		return nil, err
	}
	for step := 0; step < state.Steps; step++ {
		if _, err := driver.Step(); err != nil {
			return nil, fmt.Errorf("replaying step %d: %w", step+1, err)
		}
	}
	return driver, nil
}

// save records the session's progress. On failure the local driver is ahead
// of the store and is replayed from the stored state on the next call.
func (sm *SessionManager) save(ctx context.Context, s *session, steps int) error {
	next := *s.state
	next.Steps = steps
	next.LastActive = sm.now()
	if err := sm.store.Put(ctx, &next, sm.ttl); err != nil {
		sm.logger.Printf("%s[ERROR]%s storing session %s: %s", config.LogErrorColor, config.LogColorReset, next.ID, err)
		return fmt.Errorf("storing session: %w", err)
	}

	sm.Lock()
	s.state, s.lastActive = &next, next.LastActive
	sm.Unlock()
	return nil
}

// drop removes the session everywhere.
func (sm *SessionManager) drop(ctx context.Context, id uuid.UUID) error {
	sm.forget(id)
	if err := sm.store.Delete(ctx, id); err != nil {
		sm.logger.Printf("%s[WARN]%s deleting session %s: %s", config.LogWarnColor, config.LogColorReset, id, err)
		return err
	}
	return nil
}

func (sm *SessionManager) forget(id uuid.UUID) {
	sm.Lock()
	defer sm.Unlock()
	delete(sm.sessions, id)
}

// sweep evicts idle local drivers. It never touches a driver, since a Step
// may be running on it under the session's lock. Callers hold the write lock.
func (sm *SessionManager) sweep(now time.Time) {
	for id, s := range sm.sessions {
		if now.Sub(s.lastActive) > sm.ttl {
			delete(sm.sessions, id)
		}
	}
}
