package reading

import (
	"context"
	"log/slog"

	"github.com/daniilsolovey/campus-reading/internal/db"
)

// JustNow is the display age of a freshly written review.
const JustNow = "방금 전"

type ReviewFilter struct {
	Type      ReviewType
	ProgramID *int
	Search    string
}

func (f ReviewFilter) predicates() []Predicate[Review] {
	return []Predicate[Review]{
		func(r Review) bool { return equalOrAny(f.Type, r.Type) },
		func(r Review) bool {
			return f.ProgramID == nil || (r.ProgramID != nil && *r.ProgramID == *f.ProgramID)
		},
		func(r Review) bool {
			return containsAny(f.Search, r.Book.Title, r.Book.Author, r.Text, r.User.Name)
		},
	}
}

type Reviews struct {
	*Catalog[Review]
}

func NewReviews(table db.Table[Review], logger *slog.Logger) *Reviews {
	return &Reviews{Catalog: newCatalog("Review", table, db.Prepend, logger)}
}

func (s *Reviews) List(ctx context.Context, filter ReviewFilter, req PageRequest) (Page[Review], error) {
	return s.Query(ctx, req, filter.predicates()...)
}

// Create stores a review with fresh counters, whatever the draft carries.
func (s *Reviews) Create(ctx context.Context, draft Review) (Review, error) {
	return s.Add(ctx, func(id int) Review {
		r := draft
		r.ID = id
		r.Likes = 0
		r.Comments = 0
		r.TimeAgo = JustNow
		return r
	})
}

func (s *Reviews) Update(ctx context.Context, id int, patch ReviewPatch) (*Review, error) {
	return s.Modify(ctx, id, patch.Apply)
}

func (s *Reviews) Like(ctx context.Context, id int) (*Review, error) {
	return s.Modify(ctx, id, func(r *Review) {
		r.Likes++
	})
}
