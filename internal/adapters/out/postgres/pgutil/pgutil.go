// Package pgutil holds the small pieces every GORM repository shares: savepoint
// inserts and translation of driver errors into the domain error taxonomy.
package pgutil

import (
	"context"
	"errors"

	"repairshop/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Insert creates value inside a nested transaction. Inside an open transaction
// GORM turns that into a savepoint, so a unique violation rolls back only the
// insert and the caller can keep using the transaction.
func Insert(ctx context.Context, db *gorm.DB, value any, entity string, key any) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(value).Error
	})
	return Translate(err, entity, key)
}

// Save runs an UPDATE built by fn inside a savepoint and reports a missing row
// as ObjectNotFoundError.
func Save(ctx context.Context, db *gorm.DB, entity string, id any, fn func(tx *gorm.DB) *gorm.DB) error {
	var affected int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := fn(tx)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return Translate(err, entity, id)
	}
	if affected == 0 {
		return errs.NewObjectNotFoundError(entity, id)
	}
	return nil
}

// Translate maps driver errors onto the domain taxonomy. Unknown errors pass
// through unchanged.
func Translate(err error, entity string, key any) error {
	switch {
	case err == nil:
		return nil
	case IsDuplicate(err):
		return errs.NewDuplicateEntityErrorWithCause(entity, key, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(entity, key, err)
	default:
		return err
	}
}
