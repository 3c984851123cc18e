package service

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

type memRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	saves   int
	err     error
	sync.Mutex
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (r *memRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.Lock()
	defer r.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saves++
	r.records[record.ID] = record
	return nil
}

func (r *memRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.Lock()
	defer r.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

type memCache struct {
	memRepo
	gets int
}

func newMemCache() *memCache {
	return &memCache{memRepo: memRepo{records: make(map[uuid.UUID]*dmn.MazeRecord)}}
}

func (c *memCache) Put(ctx context.Context, record *dmn.MazeRecord) error {
	return c.Save(ctx, record)
}

func (c *memCache) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	c.gets++
	return c.ByID(ctx, id)
}

// fakeTokenizer hands out the session ID as the token.
type fakeTokenizer struct {
	err error
}

func (f *fakeTokenizer) Issue(id uuid.UUID, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return id.String(), nil
}

func (f *fakeTokenizer) SessionID(token string) (uuid.UUID, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, errors.New("invalid token")
	}
	return id, nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type memIndex struct {
	ids []uuid.UUID
	err error
	sync.Mutex
}

func (x *memIndex) Add(_ context.Context, id uuid.UUID, _ time.Time) error {
	x.Lock()
	defer x.Unlock()
	if x.err != nil {
		return x.err
	}
	x.ids = append(x.ids, id)
	return nil
}

func (x *memIndex) Latest(_ context.Context, limit int64) ([]uuid.UUID, error) {
	x.Lock()
	defer x.Unlock()
	if x.err != nil {
		return nil, x.err
	}
	var latest []uuid.UUID
	for i := len(x.ids) - 1; i >= 0 && int64(len(latest)) < limit; i-- {
		latest = append(latest, x.ids[i])
	}
	return latest, nil
}

type memSessionStore struct {
	states map[uuid.UUID]dmn.SessionState
	putErr error
	sync.Mutex
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{states: make(map[uuid.UUID]dmn.SessionState)}
}

func (m *memSessionStore) Put(_ context.Context, state *dmn.SessionState, _ time.Duration) error {
	m.Lock()
	defer m.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.states[state.ID] = *state
	return nil
}

func (m *memSessionStore) Get(_ context.Context, id uuid.UUID) (*dmn.SessionState, error) {
	m.Lock()
	defer m.Unlock()
	state, ok := m.states[id]
	if !ok {
		return nil, dmn.ErrSessionNotFound
	}
	return &state, nil
}

func (m *memSessionStore) Delete(_ context.Context, id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	delete(m.states, id)
	return nil
}
