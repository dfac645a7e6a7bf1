package persist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/pagegen/pkg/repository"
)

const (
	selectParts = `SELECT key, value FROM state_entries WHERE namespace = $1`

	upsertPart = `
		INSERT INTO state_entries (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	deleteParts = `DELETE FROM state_entries WHERE namespace = $1`
)

type postgres struct {
	db *sql.DB
}

// NewPostgres returns a store backed by the state_entries table.
func NewPostgres(db *sql.DB) Store {
	return &postgres{db: db}
}

func scanPart(s repository.Scanner) (part, error) {
	var p part
	err := s.Scan(&p.key, &p.value)
	return p, err
}

func (p *postgres) Load(ctx context.Context, namespace string) (*Snapshot, error) {
	rows, err := repository.QueryMany(ctx, p.db, selectParts, []any{namespace}, scanPart)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", namespace, repository.MapError(err, ErrNotFound))
	}

	parts := make(map[string][]byte, len(rows))
	for _, r := range rows {
		parts[r.key] = r.value
	}
	return decode(parts)
}

// Save writes every part in a single transaction.
func (p *postgres) Save(ctx context.Context, namespace string, snap *Snapshot) error {
	parts, err := encode(snap)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, p.db, func(tx *sql.Tx) (struct{}, error) {
		for _, part := range parts {
			if _, err := repository.ExecAffected(ctx, tx, upsertPart, namespace, part.key, string(part.value)); err != nil {
				return struct{}{}, fmt.Errorf("save %s: %w", part.key, repository.MapError(err, ErrNotFound))
			}
		}
		return struct{}{}, nil
	})
	return err
}

func (p *postgres) Delete(ctx context.Context, namespace string) error {
	_, err := repository.ExecAffected(ctx, p.db, deleteParts, namespace)
	return repository.MapError(err, ErrNotFound)
}
