package reading

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/daniilsolovey/campus-reading/internal/db"
)

// Catalog implements the list and item operations shared by all collections.
type Catalog[T db.Record] struct {
	name  string
	table db.Table[T]
	pos   db.Position
	order func(a, b T) int
	log   *slog.Logger
}

func newCatalog[T db.Record](name string, table db.Table[T], pos db.Position, logger *slog.Logger) *Catalog[T] {
	return &Catalog[T]{
		name:  name,
		table: table,
		pos:   pos,
		log:   logger.With("resource", name),
	}
}

// Name is the singular display name of the record type, e.g. "Notice".
func (c *Catalog[T]) Name() string {
	return c.name
}

// Query filters the whole collection, orders it when the catalog has an
// ordering and returns the requested page.
func (c *Catalog[T]) Query(ctx context.Context, req PageRequest, preds ...Predicate[T]) (Page[T], error) {
	list, err := c.table.List(ctx)
	if err != nil {
		return Page[T]{}, fmt.Errorf("db list %s: %w", c.name, err)
	}

	filtered := Filter(list, preds...)
	if c.order != nil {
		slices.SortStableFunc(filtered, c.order)
	}

	return Paginate(filtered, req), nil
}

func (c *Catalog[T]) ByID(ctx context.Context, id int) (*T, error) {
	rec, err := c.table.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get %s by id: %w", c.name, err)
	}

	return rec, nil
}

// Add stores a new record built around the assigned id.
func (c *Catalog[T]) Add(ctx context.Context, build func(id int) T) (T, error) {
	rec, err := c.table.Insert(ctx, c.pos, build)
	if err != nil {
		return rec, fmt.Errorf("db insert %s: %w", c.name, err)
	}

	c.log.InfoContext(ctx, "record created", "id", rec.RecordID())
	return rec, nil
}

// Modify applies fn to the stored record; nil means the id is absent.
func (c *Catalog[T]) Modify(ctx context.Context, id int, fn func(*T)) (*T, error) {
	rec, err := c.table.Update(ctx, id, fn)
	if err != nil {
		return nil, fmt.Errorf("db update %s: %w", c.name, err)
	}

	return rec, nil
}

func (c *Catalog[T]) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := c.table.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("db delete %s: %w", c.name, err)
	}

	if ok {
		c.log.InfoContext(ctx, "record deleted", "id", id)
	}
	return ok, nil
}

func (c *Catalog[T]) Count(ctx context.Context) (int, error) {
	n, err := c.table.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("db count %s: %w", c.name, err)
	}

	return n, nil
}

func (c *Catalog[T]) Reset(ctx context.Context, seed []T) error {
	if err := c.table.Reset(ctx, seed); err != nil {
		return fmt.Errorf("db reset %s: %w", c.name, err)
	}

	c.log.DebugContext(ctx, "collection seeded", "count", len(seed))
	return nil
}
