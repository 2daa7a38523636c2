// Package adventures provides the PostgreSQL-backed document store for
// adventure records. Documents live in a single jsonb column keyed by the
// composite id and partitioned (indexed) by category.
package adventures

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/adventures/internal/dbx"
	"github.com/dmitrijs2005/adventures/internal/models"
)

// PostgresRepository implements document queries over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FetchAll returns every stored document grouped by category.
func (r *PostgresRepository) FetchAll(ctx context.Context) (map[string][]models.Document, error) {
	query := `SELECT category, data FROM adventures ORDER BY doc_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.Document)
	for rows.Next() {
		var category string
		var data []byte
		if err := rows.Scan(&category, &data); err != nil {
			return nil, err
		}
		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		result[category] = append(result[category], doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert stores the adventure under its composite key, fully replacing any
// existing document (no field-level patching).
func (r *PostgresRepository) Upsert(ctx context.Context, category string, adventure models.Adventure) (*models.Document, error) {
	doc := models.Document{Adventure: adventure, Category: category}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	query := `
		INSERT INTO adventures (doc_id, category, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (doc_id)
		DO UPDATE SET category = EXCLUDED.category, data = EXCLUDED.data
	`
	if _, err := r.db.ExecContext(ctx, query,
		models.DocumentKey(category, adventure.ID), category, data); err != nil {
		return nil, fmt.Errorf("failed to upsert document: %w", err)
	}

	return &doc, nil
}

// Delete removes the document with the given key. Deleting a key that does
// not exist is not an error.
func (r *PostgresRepository) Delete(ctx context.Context, category string, id string) error {
	query := `DELETE FROM adventures WHERE doc_id = $1`
	if _, err := r.db.ExecContext(ctx, query, models.DocumentKey(category, id)); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
