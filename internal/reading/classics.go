package reading

import (
	"context"
	"log/slog"

	"github.com/daniilsolovey/campus-reading/internal/db"
)

type ClassicFilter struct {
	Category string
	Year     *int
	Search   string
}

func (f ClassicFilter) predicates() []Predicate[Classic] {
	return []Predicate[Classic]{
		func(c Classic) bool { return equalOrAny(f.Category, c.Category) },
		func(c Classic) bool { return intOrAny(f.Year, c.Year) },
		func(c Classic) bool { return containsAny(f.Search, c.Title, c.Author, c.Description) },
	}
}

type Classics struct {
	*Catalog[Classic]
}

func NewClassics(table db.Table[Classic], logger *slog.Logger) *Classics {
	return &Classics{Catalog: newCatalog("Classic", table, db.Append, logger)}
}

func (s *Classics) List(ctx context.Context, filter ClassicFilter, req PageRequest) (Page[Classic], error) {
	return s.Query(ctx, req, filter.predicates()...)
}

func (s *Classics) Create(ctx context.Context, draft Classic) (Classic, error) {
	return s.Add(ctx, func(id int) Classic {
		c := draft
		c.ID = id
		return c
	})
}

func (s *Classics) Update(ctx context.Context, id int, patch ClassicPatch) (*Classic, error) {
	return s.Modify(ctx, id, patch.Apply)
}
