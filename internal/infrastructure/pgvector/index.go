package pgvector

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chronolens/backend/internal/domain"
)

const defaultTable = "watch_catalog"

// Index queries a pgvector-backed catalog table for nearest neighbors
type Index struct {
	pool  *pgxpool.Pool
	table string
}

// Connect opens a pgx connection pool to the catalog database
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect catalog database: %w", err)
	}
	return pool, nil
}

// NewIndex creates a vector index over the given table
func NewIndex(pool *pgxpool.Pool, table string) *Index {
	if table == "" {
		table = defaultTable
	}
	return &Index{pool: pool, table: table}
}

// Search returns up to limit catalog entries ordered by descending cosine
// similarity to the embedding. Null metadata columns are coalesced to empty
// strings at the boundary so callers never see absent fields.
func (i *Index) Search(ctx context.Context, embedding []float32, limit int) ([]domain.CatalogMatch, error) {
	query := fmt.Sprintf(`
		SELECT id::text,
		       1 - (embedding <=> $1) AS score,
		       COALESCE(brand, ''),
		       COALESCE(model_name, ''),
		       COALESCE(reference_number, ''),
		       COALESCE(description, ''),
		       COALESCE(category, ''),
		       COALESCE(movement, ''),
		       COALESCE(caliber, '')
		FROM %s
		ORDER BY embedding <=> $1 ASC
		LIMIT $2
	`, i.table)

	rows, err := i.pool.Query(ctx, query, vectorLiteral(embedding), limit)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	var matches []domain.CatalogMatch
	for rows.Next() {
		var m domain.CatalogMatch
		if err := rows.Scan(
			&m.ID, &m.Score,
			&m.Brand, &m.ModelName, &m.ReferenceNumber,
			&m.Description, &m.Category, &m.Movement, &m.Caliber,
		); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog rows: %w", err)
	}

	return matches, nil
}

// vectorLiteral formats []float32 as "[v1,v2,...]" (pgvector expects brackets)
func vectorLiteral(embedding []float32) string {
	parts := make([]string, len(embedding))
	for i, v := range embedding {
		parts[i] = strconv.FormatFloat(float64(v), 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
