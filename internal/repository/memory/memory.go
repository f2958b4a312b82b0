// Package memory provides in-memory repository implementations used by
// unit tests, mirroring the postgresql package behavior without a live
// database.
package memory

import "context"

// TxManager is a pass-through database.TxManager. Atomicity across
// repositories is a property of the postgresql implementation only; the
// memory stores apply each write immediately.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
