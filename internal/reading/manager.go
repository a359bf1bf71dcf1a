package reading

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daniilsolovey/campus-reading/internal/db"
)

// Tables are the storage backends of the four collections.
type Tables struct {
	Notices  db.Table[Notice]
	Reviews  db.Table[Review]
	Classics db.Table[Classic]
	Programs db.Table[Program]
}

func NewMemoryTables() Tables {
	return Tables{
		Notices:  db.NewMemoryTable[Notice](),
		Reviews:  db.NewMemoryTable[Review](),
		Classics: db.NewMemoryTable[Classic](),
		Programs: db.NewMemoryTable[Program](),
	}
}

type Manager struct {
	Notices  *Notices
	Reviews  *Reviews
	Classics *Classics
	Programs *Programs
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now as the source of notice dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func NewManager(tables Tables, logger *slog.Logger, opts ...Option) *Manager {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Manager{
		Notices:  NewNotices(tables.Notices, logger, o.now),
		Reviews:  NewReviews(tables.Reviews, logger),
		Classics: NewClassics(tables.Classics, logger),
		Programs: NewPrograms(tables.Programs, logger),
	}
}

// Seed replaces the content of every collection with the seed dataset.
func (m *Manager) Seed(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.Notices.Reset(gctx, SeedNotices()) })
	g.Go(func() error { return m.Reviews.Reset(gctx, SeedReviews()) })
	g.Go(func() error { return m.Classics.Reset(gctx, SeedClassics()) })
	g.Go(func() error { return m.Programs.Reset(gctx, SeedPrograms()) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("seed collections: %w", err)
	}

	return nil
}

func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	var (
		stats Stats
		err   error
	)

	if stats.Notices, err = m.Notices.Count(ctx); err != nil {
		return Stats{}, err
	}
	if stats.Reviews, err = m.Reviews.Count(ctx); err != nil {
		return Stats{}, err
	}
	if stats.Classics, err = m.Classics.Count(ctx); err != nil {
		return Stats{}, err
	}
	if stats.Programs, err = m.Programs.Count(ctx); err != nil {
		return Stats{}, err
	}

	return stats, nil
}
