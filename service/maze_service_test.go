package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMazeService(t *testing.T) (*MazeService, *memRepo, *memCache) {
	t.Helper()
	repo, cache := newMemRepo(), newMemCache()
	svc, err := NewMazeService(&Config{
		Repo:     repo,
		Cache:    cache,
		Index:    &memIndex{},
		Defaults: Defaults{Width: 10, Height: 10, CenterRoom: true},
		Logger:   discardLogger(),
	})
	require.NoError(t, err)
	return svc, repo, cache
}

func TestNewMazeServiceRequiresDependencies(t *testing.T) {
	_, err := NewMazeService(&Config{Logger: discardLogger()})
	assert.Error(t, err)
}

func TestMazeServiceGenerate(t *testing.T) {
	svc, repo, cache := newTestMazeService(t)
	ctx := context.Background()

	t.Run("defaults apply", func(t *testing.T) {
		record, err := svc.Generate(ctx, dmn.MazeOptions{})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, record.ID)
		assert.NotZero(t, record.Seed)
		assert.Equal(t, 10, record.Layout.Width)
		assert.Equal(t, 10, record.Layout.Height)
		assert.Len(t, record.Layout.CenterRoom, 4)
		assert.True(t, record.Layout.Complete)

		stored, err := repo.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, stored)
		cached, err := cache.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, cached)
	})

	t.Run("same seed reproduces the maze", func(t *testing.T) {
		noRoom := false
		opts := dmn.MazeOptions{Width: 9, Height: 7, CenterRoom: &noRoom, Seed: 1234}
		first, err := svc.Generate(ctx, opts)
		require.NoError(t, err)
		second, err := svc.Generate(ctx, opts)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, int64(1234), first.Seed)
		assert.Equal(t, first.Layout, second.Layout)
		assert.Equal(t, 8, first.Layout.Width)
		assert.Equal(t, 6, first.Layout.Height)
		assert.Empty(t, first.Layout.CenterRoom)
	})

	t.Run("invalid options are rejected", func(t *testing.T) {
		_, err := svc.Generate(ctx, dmn.MazeOptions{Width: -4})
		assert.True(t, errors.Is(err, maze.ErrInvalidDimensions))

		c := maze.NorthWest
		_, err = svc.Generate(ctx, dmn.MazeOptions{EntranceCorner: &c, ExitCorner: &c})
		assert.True(t, errors.Is(err, maze.ErrInvalidCorner))
	})

	t.Run("repo failure is returned", func(t *testing.T) {
		repo.err = errors.New("db down")
		defer func() { repo.err = nil }()
		_, err := svc.Generate(ctx, dmn.MazeOptions{})
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("cache failure is tolerated", func(t *testing.T) {
		cache.err = errors.New("redis down")
		defer func() { cache.err = nil }()
		_, err := svc.Generate(ctx, dmn.MazeOptions{})
		assert.NoError(t, err)
	})
}

func TestMazeServiceByID(t *testing.T) {
	svc, repo, cache := newTestMazeService(t)
	ctx := context.Background()

	record, err := svc.Generate(ctx, dmn.MazeOptions{Seed: 5})
	require.NoError(t, err)

	t.Run("cache hit", func(t *testing.T) {
		got, err := svc.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("cache miss falls back to repo and refills", func(t *testing.T) {
		cache.Lock()
		delete(cache.records, record.ID)
		cache.Unlock()

		got, err := svc.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, got)

		_, err = cache.ByID(ctx, record.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.ByID(ctx, uuid.New())
		assert.True(t, errors.Is(err, dmn.ErrMazeNotFound))
	})

	assert.Equal(t, 1, repo.saves)
}

func TestMazeServiceRecent(t *testing.T) {
	svc, repo, cache := newTestMazeService(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for seed := int64(1); seed <= 3; seed++ {
		record, err := svc.Generate(ctx, dmn.MazeOptions{Width: 4, Height: 4, Seed: seed})
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	t.Run("newest first", func(t *testing.T) {
		recent, err := svc.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, ids[2], recent[0].ID)
		assert.Equal(t, ids[1], recent[1].ID)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		recent, err := svc.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, recent, 1)
	})

	t.Run("skips vanished mazes", func(t *testing.T) {
		repo.Lock()
		delete(repo.records, ids[2])
		repo.Unlock()
		cache.Lock()
		delete(cache.records, ids[2])
		cache.Unlock()

		recent, err := svc.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, ids[1], recent[0].ID)
	})

	t.Run("index failure", func(t *testing.T) {
		svc.index.(*memIndex).err = errors.New("down")
		_, err := svc.Recent(ctx, 1)
		assert.Error(t, err)
	})
}
