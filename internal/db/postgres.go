package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// PGTable stores records of one resource as JSONB rows of the shared
// "records" table. Collection order is kept in the position column.
type PGTable[T Record] struct {
	db       *pg.DB
	resource string
}

func NewPGTable[T Record](db *pg.DB, resource string) *PGTable[T] {
	return &PGTable[T]{
		db:       db,
		resource: resource,
	}
}

func (t *PGTable[T]) List(ctx context.Context) ([]T, error) {
	var rows []RecordRow
	err := t.db.ModelContext(ctx, &rows).
		Where(`"t"."resource" = ?`, t.resource).
		OrderExpr(`"t"."position" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.resource, err)
	}

	list := make([]T, len(rows))
	for i := range rows {
		if err := json.Unmarshal(rows[i].Body, &list[i]); err != nil {
			return nil, fmt.Errorf("decode %s %d: %w", t.resource, rows[i].ID, err)
		}
	}

	return list, nil
}

func (t *PGTable[T]) ByID(ctx context.Context, id int) (*T, error) {
	row := &RecordRow{}
	err := t.db.ModelContext(ctx, row).
		Where(`"t"."resource" = ?`, t.resource).
		Where(`"t"."id" = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s by id: %w", t.resource, err)
	}

	return t.decode(row)
}

func (t *PGTable[T]) Insert(ctx context.Context, pos Position, build func(id int) T) (T, error) {
	var created T
	err := t.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		// serializes id assignment per resource until commit
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext(?))`, t.resource); err != nil {
			return fmt.Errorf("lock %s: %w", t.resource, err)
		}

		var maxID int
		var minPos, maxPos int64
		_, err := tx.QueryOneContext(ctx, pg.Scan(&maxID, &minPos, &maxPos), `
			SELECT COALESCE(MAX("id"), 0), COALESCE(MIN("position"), 0), COALESCE(MAX("position"), -1)
			FROM "records"
			WHERE "resource" = ?`, t.resource)
		if err != nil {
			return fmt.Errorf("scan %s bounds: %w", t.resource, err)
		}

		created = build(maxID + 1)
		row, err := t.encode(created)
		if err != nil {
			return err
		}

		row.Position = maxPos + 1
		if pos == Prepend {
			row.Position = minPos - 1
		}

		if _, err := tx.ModelContext(ctx, row).Insert(); err != nil {
			return fmt.Errorf("insert %s: %w", t.resource, err)
		}

		return nil
	})

	return created, err
}

func (t *PGTable[T]) Update(ctx context.Context, id int, apply func(*T)) (*T, error) {
	var updated *T
	err := t.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		row := &RecordRow{}
		err := tx.ModelContext(ctx, row).
			Where(`"t"."resource" = ?`, t.resource).
			Where(`"t"."id" = ?`, id).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to lock %s %d: %w", t.resource, id, err)
		}

		rec, err := t.decode(row)
		if err != nil {
			return err
		}

		apply(rec)
		if row.Body, err = json.Marshal(rec); err != nil {
			return fmt.Errorf("encode %s %d: %w", t.resource, id, err)
		}

		if _, err := tx.ModelContext(ctx, row).Column(Columns.Record.Body).WherePK().Update(); err != nil {
			return fmt.Errorf("update %s %d: %w", t.resource, id, err)
		}

		updated = rec
		return nil
	})

	return updated, err
}

func (t *PGTable[T]) Delete(ctx context.Context, id int) (bool, error) {
	res, err := t.db.ModelContext(ctx, (*RecordRow)(nil)).
		Where(`"t"."resource" = ?`, t.resource).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %d: %w", t.resource, id, err)
	}

	return res.RowsAffected() > 0, nil
}

func (t *PGTable[T]) Count(ctx context.Context) (int, error) {
	count, err := t.db.ModelContext(ctx, (*RecordRow)(nil)).
		Where(`"t"."resource" = ?`, t.resource).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", t.resource, err)
	}

	return count, nil
}

func (t *PGTable[T]) Reset(ctx context.Context, seed []T) error {
	return t.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		_, err := tx.ModelContext(ctx, (*RecordRow)(nil)).
			Where(`"t"."resource" = ?`, t.resource).
			Delete()
		if err != nil {
			return fmt.Errorf("truncate %s: %w", t.resource, err)
		}

		if len(seed) == 0 {
			return nil
		}

		rows := make([]*RecordRow, len(seed))
		for i := range seed {
			if rows[i], err = t.encode(seed[i]); err != nil {
				return err
			}
			rows[i].Position = int64(i)
		}

		if _, err := tx.ModelContext(ctx, &rows).Insert(); err != nil {
			return fmt.Errorf("seed %s: %w", t.resource, err)
		}

		return nil
	})
}

func (t *PGTable[T]) encode(rec T) (*RecordRow, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode %s %d: %w", t.resource, rec.RecordID(), err)
	}

	return &RecordRow{
		Resource: t.resource,
		ID:       rec.RecordID(),
		Body:     body,
	}, nil
}

func (t *PGTable[T]) decode(row *RecordRow) (*T, error) {
	var rec T
	if err := json.Unmarshal(row.Body, &rec); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", t.resource, row.ID, err)
	}

	return &rec, nil
}
