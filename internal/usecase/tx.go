package usecase

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner is the transaction entry point held by the usecases that need
// multi-statement atomicity. *pgxpool.Pool satisfies it; tests substitute a
// stub so commit and revert paths run without a live pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
