package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"artfeed/internal/errs"
	"artfeed/internal/model"
)

// ReactionRepo implements the reaction ledger using PostgreSQL.
type ReactionRepo struct{ db *DB }

// NewReactionRepo constructs a reaction repository.
func NewReactionRepo(db *DB) *ReactionRepo { return &ReactionRepo{db: db} }

// Record inserts the reaction row and bumps the art's counter in one
// transaction. The (user_id, art_id) unique constraint is the only guard
// against double-writes: a concurrent duplicate loses the insert, the
// transaction rolls back and no counter moves.
func (r *ReactionRepo) Record(ctx context.Context, re model.Reaction) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const ins = `INSERT INTO reactions (user_id, art_id, kind) VALUES ($1, $2, $3)`
	if _, err = tx.Exec(ctx, ins, re.UserID, re.ArtID, string(re.Kind)); err != nil {
		switch {
		case isUniqueViolation(err):
			err = errs.ErrAlreadyReacted
		case isForeignKeyViolation(err):
			err = errs.ErrNotFound
		}
		return err
	}

	upd := `UPDATE arts SET likes = likes + 1 WHERE id=$1`
	if re.Kind == model.KindDisapprove {
		upd = `UPDATE arts SET dislikes = dislikes + 1 WHERE id=$1`
	}
	tag, execErr := tx.Exec(ctx, upd, re.ArtID)
	if execErr != nil {
		err = execErr
		return err
	}
	if tag.RowsAffected() == 0 {
		err = errs.ErrNotFound
		return err
	}
	return nil
}

// Exists reports whether the viewer already has a reaction row for the art.
func (r *ReactionRepo) Exists(ctx context.Context, userID, artID int64) (bool, error) {
	const q = `SELECT 1 FROM reactions WHERE user_id=$1 AND art_id=$2`
	var one int
	err := r.db.Pool.QueryRow(ctx, q, userID, artID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
