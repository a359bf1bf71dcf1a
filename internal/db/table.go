package db

import (
	"context"
	"errors"
)

// Record is implemented by every row kept in a Table.
type Record interface {
	RecordID() int
}

// Position tells Insert where a new record goes in the collection order.
type Position int

const (
	Append Position = iota
	Prepend
)

// ErrConflict is returned when a backend gives up on a contended write.
var ErrConflict = errors.New("concurrent modification, retries exhausted")

// Table is an ordered collection of records of one type.
//
// ByID and Update return a nil record when the id is absent; Delete reports
// whether anything was removed. New ids are max(existing ids, 0)+1.
type Table[T Record] interface {
	List(ctx context.Context) ([]T, error)
	ByID(ctx context.Context, id int) (*T, error)
	Insert(ctx context.Context, pos Position, build func(id int) T) (T, error)
	Update(ctx context.Context, id int, apply func(*T)) (*T, error)
	Delete(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int, error)
	Reset(ctx context.Context, seed []T) error
}

func nextID[T Record](list []T) int {
	maxID := 0
	for i := range list {
		if id := list[i].RecordID(); id > maxID {
			maxID = id
		}
	}

	return maxID + 1
}
