package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSaveNotFound is returned when an account has no stored save game.
var ErrSaveNotFound = errors.New("save game not found")

// SaveGame is one account's serialized game state.
type SaveGame struct {
	AccountID int64
	State     json.RawMessage
	UpdatedAt time.Time
}

// SaveGameRepository persists one JSONB state blob per account. The
// blob is opaque to the database; the session layer owns its shape.
type SaveGameRepository struct {
	db *pgxpool.Pool
}

// NewSaveGameRepository creates a SaveGameRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewSaveGameRepository(db *pgxpool.Pool) *SaveGameRepository {
	return &SaveGameRepository{db: db}
}

// Upsert stores the state blob for an account, replacing any previous save.
//
// Precondition: state must be valid JSON; the account must exist.
// Postcondition: A subsequent Load returns exactly this blob.
func (r *SaveGameRepository) Upsert(ctx context.Context, accountID int64, state json.RawMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO save_games (account_id, state, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (account_id)
		 DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		accountID, state,
	)
	if err != nil {
		return fmt.Errorf("upserting save game: %w", err)
	}
	return nil
}

// Load retrieves an account's save game.
//
// Postcondition: Returns the SaveGame or ErrSaveNotFound.
func (r *SaveGameRepository) Load(ctx context.Context, accountID int64) (SaveGame, error) {
	var save SaveGame
	err := r.db.QueryRow(ctx,
		`SELECT account_id, state, updated_at
		 FROM save_games WHERE account_id = $1`,
		accountID,
	).Scan(&save.AccountID, &save.State, &save.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SaveGame{}, ErrSaveNotFound
		}
		return SaveGame{}, fmt.Errorf("querying save game: %w", err)
	}
	return save, nil
}

// Delete removes an account's save game, if present.
//
// Postcondition: Returns ErrSaveNotFound when there was nothing to delete.
func (r *SaveGameRepository) Delete(ctx context.Context, accountID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM save_games WHERE account_id = $1`,
		accountID,
	)
	if err != nil {
		return fmt.Errorf("deleting save game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSaveNotFound
	}
	return nil
}
