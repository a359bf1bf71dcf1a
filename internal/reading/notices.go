package reading

import (
	"cmp"
	"context"
	"log/slog"
	"time"

	"github.com/daniilsolovey/campus-reading/internal/db"
)

const dateLayout = "2006-01-02"

type NoticeFilter struct {
	Search string
}

func (f NoticeFilter) predicates() []Predicate[Notice] {
	return []Predicate[Notice]{
		func(n Notice) bool { return containsAny(f.Search, n.Title, n.Content) },
	}
}

// Notices is the notice board. Newest notices are stored first and lists are
// ordered important-first, then by date descending.
type Notices struct {
	*Catalog[Notice]
	now func() time.Time
}

func NewNotices(table db.Table[Notice], logger *slog.Logger, now func() time.Time) *Notices {
	c := newCatalog("Notice", table, db.Prepend, logger)
	c.order = compareNotices

	return &Notices{Catalog: c, now: now}
}

func compareNotices(a, b Notice) int {
	if a.Important != b.Important {
		if a.Important {
			return -1
		}
		return 1
	}

	return cmp.Compare(b.Date, a.Date)
}

func (s *Notices) List(ctx context.Context, filter NoticeFilter, req PageRequest) (Page[Notice], error) {
	return s.Query(ctx, req, filter.predicates()...)
}

// ByID returns the notice and counts the read: views grows by one per call.
func (s *Notices) ByID(ctx context.Context, id int) (*Notice, error) {
	return s.Modify(ctx, id, func(n *Notice) {
		n.Views++
	})
}

func (s *Notices) Create(ctx context.Context, draft Notice) (Notice, error) {
	return s.Add(ctx, func(id int) Notice {
		n := draft
		n.ID = id
		n.Date = s.now().Format(dateLayout)
		n.Views = 0
		n.Attachments = nonNil(draft.Attachments)
		return n
	})
}

func (s *Notices) Update(ctx context.Context, id int, patch NoticePatch) (*Notice, error) {
	return s.Modify(ctx, id, patch.Apply)
}
