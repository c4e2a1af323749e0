package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// RunInTx executes fn inside a single database transaction. The handle is
// carried on the context so repositories in other packages join the same
// transaction through Conn.
func RunInTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Conn returns the transaction handle carried by ctx, or db when the caller
// is not inside RunInTx.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
