package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// SquirrelRepository implements RecordStore on SQLite.
type SquirrelRepository struct {
	db *sql.DB
}

// NewSquirrelRepository constructs a repository over an open database.
func NewSquirrelRepository(db *sql.DB) *SquirrelRepository {
	return &SquirrelRepository{db: db}
}

var _ RecordStore = (*SquirrelRepository)(nil)

// parseID resolves an opaque path id to a numeric key. Anything that
// is not a positive integer cannot match a stored row, so it reports
// ErrNotFound rather than a format error.
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

// List returns all squirrels ordered by ascending id.
func (r *SquirrelRepository) List(ctx context.Context) ([]Squirrel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, size
		FROM squirrels
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list squirrels: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty store serializes as [] rather than null.
	squirrels := make([]Squirrel, 0)
	for rows.Next() {
		var s Squirrel
		if err := rows.Scan(&s.ID, &s.Name, &s.Size); err != nil {
			return nil, fmt.Errorf("list squirrels: %w", err)
		}
		squirrels = append(squirrels, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list squirrels: %w", err)
	}

	return squirrels, nil
}

// Get retrieves a single squirrel by id.
func (r *SquirrelRepository) Get(ctx context.Context, id string) (*Squirrel, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var s Squirrel
	err = r.db.QueryRowContext(ctx, `
		SELECT id, name, size
		FROM squirrels
		WHERE id = ?
	`, key).Scan(&s.ID, &s.Name, &s.Size)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get squirrel %q: %w", id, err)
	}

	return &s, nil
}

// Insert stores a new squirrel. AUTOINCREMENT assigns the next id,
// strictly larger than every id ever issued.
func (r *SquirrelRepository) Insert(ctx context.Context, name, size string) (*Squirrel, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO squirrels (name, size)
		VALUES (?, ?)
	`, name, size)
	if err != nil {
		return nil, fmt.Errorf("insert squirrel: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert squirrel: %w", err)
	}

	return &Squirrel{ID: id, Name: name, Size: size}, nil
}

// Update overwrites name and size of an existing squirrel in place.
func (r *SquirrelRepository) Update(ctx context.Context, id, name, size string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE squirrels
		SET name = ?, size = ?
		WHERE id = ?
	`, name, size, key)
	if err != nil {
		return fmt.Errorf("update squirrel %q: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update squirrel %q: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a squirrel by id.
func (r *SquirrelRepository) Delete(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM squirrels
		WHERE id = ?
	`, key)
	if err != nil {
		return fmt.Errorf("delete squirrel %q: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete squirrel %q: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
