// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package notes

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/platform/database/schema"
	"github.com/inkwell-app/inkwell/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates the Postgres implementation of the note store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Note, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.Notes.ID, schema.Notes.Title, schema.Notes.Content, schema.Notes.Category,
		schema.Notes.Published, schema.Notes.CreatedBy, schema.Notes.UpdatedBy,
		schema.Notes.CreatedAt, schema.Notes.UpdatedAt,
		schema.Notes.Table, schema.Notes.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`, schema.Notes.Table, schema.Notes.DeletedAt)

	args := []any{}
	countArgs := []any{}

	if filter.Title != "" {
		searchTerm := "%" + filter.Title + "%"
		clause := fmt.Sprintf(" AND %s ILIKE $", schema.Notes.Title) + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if filter.Content != "" {
		searchTerm := "%" + filter.Content + "%"
		clause := fmt.Sprintf(" AND %s ILIKE $", schema.Notes.Content) + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if filter.Published != nil {
		clause := fmt.Sprintf(" AND %s = $", schema.Notes.Published) + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, *filter.Published)
		countArgs = append(countArgs, *filter.Published)
	}

	// Sort fields were clamped to the whitelist before reaching this point,
	// so interpolating them cannot inject raw client input.
	query += fmt.Sprintf(" ORDER BY %s %s LIMIT $", filter.SortBy, filter.SortOrder) +
		itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_notes")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_notes")
	}
	defer rows.Close()

	var collection []*Note
	for rows.Next() {
		note := &Note{}
		if err := rows.Scan(
			&note.ID, &note.Title, &note.Content, &note.Category, &note.Published,
			&note.CreatedBy, &note.UpdatedBy, &note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_note")
		}
		collection = append(collection, note)
	}

	return collection, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, id uuid.UUID) (*Note, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.Notes.ID, schema.Notes.Title, schema.Notes.Content, schema.Notes.Category,
		schema.Notes.Published, schema.Notes.CreatedBy, schema.Notes.UpdatedBy,
		schema.Notes.CreatedAt, schema.Notes.UpdatedAt,
		schema.Notes.Table, schema.Notes.ID, schema.Notes.DeletedAt,
	)

	note := &Note{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&note.ID, &note.Title, &note.Content, &note.Category, &note.Published,
		&note.CreatedBy, &note.UpdatedBy, &note.CreatedAt, &note.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "get_note")
	}

	return note, nil
}

func (repository *PostgresRepository) Create(context context.Context, note *Note) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Notes.Table,
		schema.Notes.ID, schema.Notes.Title, schema.Notes.Content, schema.Notes.Category,
		schema.Notes.Published, schema.Notes.CreatedBy, schema.Notes.CreatedAt, schema.Notes.UpdatedAt,
		schema.Notes.CreatedAt, schema.Notes.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		note.ID, note.Title, note.Content, note.Category, note.Published, note.CreatedBy,
	).Scan(&note.CreatedAt, &note.UpdatedAt)

	return dberr.Wrap(err, "create_note")
}

func (repository *PostgresRepository) Update(context context.Context, note *Note) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.Notes.Table,
		schema.Notes.Title, schema.Notes.Content, schema.Notes.Category,
		schema.Notes.Published, schema.Notes.UpdatedBy, schema.Notes.UpdatedAt,
		schema.Notes.ID, schema.Notes.DeletedAt,
		schema.Notes.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		note.ID, note.Title, note.Content, note.Category, note.Published, note.UpdatedBy, time.Now(),
	).Scan(&note.UpdatedAt)

	return dberr.Wrap(err, "update_note")
}

func (repository *PostgresRepository) SoftDelete(context context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.Notes.Table, schema.Notes.DeletedAt, schema.Notes.ID, schema.Notes.DeletedAt,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_note")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
