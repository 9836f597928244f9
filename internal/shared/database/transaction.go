package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNilTxFunc = errors.New("database: transaction function is nil")

// WithTransaction runs fn in a single transaction bound to ctx.
// fn returning an error rolls everything back, so a failed listing insert
// leaves nothing behind.
//
//	err := database.WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repo.Create(ctx, tx, listing)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return ErrNilTxFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return db.WithContext(ctx).Transaction(fn)
}
