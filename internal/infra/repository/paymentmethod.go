package repository

import (
	"context"

	"tripcart/internal/infra"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// PaymentMethodRepository serves the read-mostly payment method lookup table.
type PaymentMethodRepository struct {
	db DBTX
}

func NewPaymentMethodRepository(db DBTX) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) List(ctx context.Context) ([]*readmodel.PaymentMethodRM, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment methods", err)
	}
	defer rows.Close()

	var result []*readmodel.PaymentMethodRM
	for rows.Next() {
		var rm readmodel.PaymentMethodRM
		if err := rows.Scan(&rm.ID, &rm.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment method row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment methods", err)
	}
	return result, nil
}

func (r *PaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PaymentMethodRM, error) {
	var rm readmodel.PaymentMethodRM
	err := r.db.QueryRow(ctx, `SELECT id, name FROM payment_methods WHERE id = $1`, id).
		Scan(&rm.ID, &rm.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("payment method not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment method by ID", err)
	}
	return &rm, nil
}

// FindDefault returns the first method by name, used when a cart line is added
// without an explicit payment method.
func (r *PaymentMethodRepository) FindDefault(ctx context.Context) (*readmodel.PaymentMethodRM, error) {
	var rm readmodel.PaymentMethodRM
	err := r.db.QueryRow(ctx, `SELECT id, name FROM payment_methods ORDER BY name LIMIT 1`).
		Scan(&rm.ID, &rm.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("no payment methods configured", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find default payment method", err)
	}
	return &rm, nil
}
