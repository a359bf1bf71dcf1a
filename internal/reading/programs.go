package reading

import (
	"context"
	"log/slog"

	"github.com/daniilsolovey/campus-reading/internal/db"
)

type ProgramFilter struct {
	Category string
	Status   string
	Search   string
}

func (f ProgramFilter) predicates() []Predicate[Program] {
	return []Predicate[Program]{
		func(p Program) bool { return equalOrAny(f.Category, p.Category) },
		func(p Program) bool { return equalOrAny(f.Status, p.Status) },
		func(p Program) bool { return containsAny(f.Search, p.Title, p.Description) },
	}
}

type Programs struct {
	*Catalog[Program]
}

func NewPrograms(table db.Table[Program], logger *slog.Logger) *Programs {
	return &Programs{Catalog: newCatalog("Program", table, db.Append, logger)}
}

func (s *Programs) List(ctx context.Context, filter ProgramFilter, req PageRequest) (Page[Program], error) {
	return s.Query(ctx, req, filter.predicates()...)
}

func (s *Programs) Create(ctx context.Context, draft Program) (Program, error) {
	return s.Add(ctx, func(id int) Program {
		p := draft
		p.ID = id
		p.Participants = 0
		return p
	})
}

func (s *Programs) Update(ctx context.Context, id int, patch ProgramPatch) (*Program, error) {
	return s.Modify(ctx, id, patch.Apply)
}

// Join registers one more participant.
func (s *Programs) Join(ctx context.Context, id int) (*Program, error) {
	return s.Modify(ctx, id, func(p *Program) {
		p.Participants++
	})
}
