//go:build unit

package usecase_test

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// stubTx stands in for a pool transaction. It tracks whether Commit or
// Rollback ran and mirrors pgx by returning ErrTxClosed from Rollback once
// the transaction is finished, which is what the deferred rollback in the
// usecases sees after a successful commit.
type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *stubTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(context.Context) error {
	if t.committed || t.rolledBack {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type stubTxBeginner struct {
	txs []*stubTx
	err error
}

func (b *stubTxBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	tx := &stubTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func (b *stubTxBeginner) lastTx() *stubTx {
	if len(b.txs) == 0 {
		return nil
	}
	return b.txs[len(b.txs)-1]
}
