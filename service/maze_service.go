package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const maxRecent = 50

// MazeService generates mazes synchronously and keeps them in the repository and cache.
type MazeService struct {
	repo     i.MazeRepo
	cache    i.LayoutCache
	index    i.RecentIndex
	defaults Defaults
	logger   *log.Logger
	now      func() time.Time
}

// Config holds the dependencies of a MazeService.
type Config struct {
	Repo     i.MazeRepo
	Cache    i.LayoutCache
	Index    i.RecentIndex
	Defaults Defaults
	Logger   *log.Logger
}

// NewMazeService creates a MazeService.
func NewMazeService(c *Config) (*MazeService, error) {
	if c.Repo == nil || c.Cache == nil || c.Index == nil || c.Logger == nil {
		return nil, errors.New("maze service requires a repo, a cache, an index and a logger")
	}
	return &MazeService{
		repo:     c.Repo,
		cache:    c.Cache,
		index:    c.Index,
		defaults: c.Defaults,
		logger:   c.Logger,
		now:      time.Now,
	}, nil
}

// Generate builds a complete maze in one call and stores it.
func (s *MazeService) Generate(ctx context.Context, opts dmn.MazeOptions) (*dmn.MazeRecord, error) {
	driver, seed, err := s.defaults.driverFor(opts, s.now(), s.logger)
	if err != nil {
		return nil, err
	}
	if err := driver.Generate(); err != nil {
		s.logger.Printf("%s[ERROR]%s generating maze: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		Seed:      seed,
		Layout:    driver.Layout(),
		CreatedAt: s.now().UTC(),
	}
	if err := s.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Printf("%s[INFO]%s generated maze %s (%dx%d, seed %d)", config.LogInfoColor, config.LogColorReset, record.ID, record.Layout.Width, record.Layout.Height, seed)
	return record, nil
}

// Save persists a finished maze, caches it and indexes it. Cache and index failures are logged only.
func (s *MazeService) Save(ctx context.Context, record *dmn.MazeRecord) error {
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Printf("%s[ERROR]%s saving maze %s: %s", config.LogErrorColor, config.LogColorReset, record.ID, err)
		return fmt.Errorf("saving maze: %w", err)
	}
	if err := s.cache.Put(ctx, record); err != nil {
		s.logger.Printf("%s[WARN]%s caching maze %s: %s", config.LogWarnColor, config.LogColorReset, record.ID, err)
	}
	if err := s.index.Add(ctx, record.ID, record.CreatedAt); err != nil {
		s.logger.Printf("%s[WARN]%s indexing maze %s: %s", config.LogWarnColor, config.LogColorReset, record.ID, err)
	}
	return nil
}

// ByID looks a maze up in the cache first and falls back to the repository.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := s.cache.Get(ctx, id)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, dmn.ErrMazeNotFound) {
		s.logger.Printf("%s[WARN]%s reading cached maze %s: %s", config.LogWarnColor, config.LogColorReset, id, err)
	}

	record, err = s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, record); err != nil {
		s.logger.Printf("%s[WARN]%s caching maze %s: %s", config.LogWarnColor, config.LogColorReset, id, err)
	}
	return record, nil
}

// Recent returns up to limit finished mazes, newest first, clamped to [1, maxRecent].
// Indexed mazes that no longer exist are skipped.
func (s *MazeService) Recent(ctx context.Context, limit int) ([]*dmn.MazeRecord, error) {
	limit = max(1, min(limit, maxRecent))

	ids, err := s.index.Latest(ctx, int64(limit))
	if err != nil {
		s.logger.Printf("%s[ERROR]%s listing recent mazes: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, fmt.Errorf("listing recent mazes: %w", err)
	}

	records := make([]*dmn.MazeRecord, 0, len(ids))
	for _, id := range ids {
		record, err := s.ByID(ctx, id)
		if errors.Is(err, dmn.ErrMazeNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
