package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"artfeed/internal/errs"
	"artfeed/internal/model"
)

// ArtRepo implements ArtRepository using PostgreSQL.
type ArtRepo struct{ db *DB }

// NewArtRepo constructs an art repository.
func NewArtRepo(db *DB) *ArtRepo { return &ArtRepo{db: db} }

// Create inserts an art with zeroed counters and returns its assigned id.
func (r *ArtRepo) Create(ctx context.Context, ownerID int64, fileID, caption string) (int64, error) {
	const q = `
INSERT INTO arts (owner_id, file_id, caption)
VALUES ($1, $2, $3)
RETURNING id`
	var id int64
	if err := r.db.Pool.QueryRow(ctx, q, ownerID, fileID, caption).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// Get returns a single art by id.
func (r *ArtRepo) Get(ctx context.Context, id int64) (*model.Art, error) {
	const q = `
SELECT id, owner_id, file_id, caption, likes, dislikes, created_at
FROM arts WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	return scanArt(row)
}

// ListByOwner returns the owner's arts, newest first.
func (r *ArtRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Art, error) {
	const q = `
SELECT id, owner_id, file_id, caption, likes, dislikes, created_at
FROM arts
WHERE owner_id=$1
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Art
	for rows.Next() {
		var a model.Art
		if err = rows.Scan(&a.ID, &a.OwnerID, &a.FileID, &a.Caption, &a.Likes, &a.Dislikes, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// OwnerStats aggregates the owner's gallery. COALESCE keeps the zero-art
// case at (0, 0, 0) instead of NULL sums.
func (r *ArtRepo) OwnerStats(ctx context.Context, ownerID int64) (model.OwnerStats, error) {
	const q = `
SELECT COUNT(*), COALESCE(SUM(likes), 0), COALESCE(SUM(dislikes), 0)
FROM arts WHERE owner_id=$1`
	var s model.OwnerStats
	if err := r.db.Pool.QueryRow(ctx, q, ownerID).Scan(&s.Arts, &s.Likes, &s.Dislikes); err != nil {
		return model.OwnerStats{}, err
	}
	return s, nil
}

// RandomUnseen picks one candidate uniformly at random. Candidates are arts
// the viewer does not own and has no reaction row for; browsing without
// reacting leaves an art in the pool.
func (r *ArtRepo) RandomUnseen(ctx context.Context, viewerID int64) (*model.Art, error) {
	const q = `
SELECT id, owner_id, file_id, caption, likes, dislikes, created_at
FROM arts
WHERE owner_id <> $1
  AND NOT EXISTS (
    SELECT 1 FROM reactions WHERE reactions.art_id = arts.id AND reactions.user_id = $1
  )
ORDER BY random()
LIMIT 1`
	row := r.db.Pool.QueryRow(ctx, q, viewerID)
	a, err := scanArt(row)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.ErrFeedExhausted
	}
	return a, err
}

func scanArt(row pgx.Row) (*model.Art, error) {
	var a model.Art
	if err := row.Scan(&a.ID, &a.OwnerID, &a.FileID, &a.Caption, &a.Likes, &a.Dislikes, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
