package repository

import (
	"context"
	"time"

	"tripcart/internal/domain/cart"
	"tripcart/internal/infra"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartLineRepository struct {
	db DBTX
}

func NewCartLineRepository(db DBTX) *CartLineRepository {
	return &CartLineRepository{db: db}
}

// cartLineSelect joins the destination so list reads carry the display name
// and a total recomputed from the destination's current price.
const cartLineSelect = `
	SELECT cl.id, cl.user_id, cl.destination_id, d.name, cl.payment_method_id,
	       cl.quantity, cl.status, cl.external_reference, cl.preference_id,
	       cl.payment_id, cl.departure_date, d.unit_price,
	       d.unit_price * cl.quantity,
	       cl.created_at, cl.status_updated_at, cl.purchased_at
	FROM cart_lines cl
	JOIN destinations d ON d.id = cl.destination_id`

func (r *CartLineRepository) Create(
	ctx context.Context,
	userID, destinationID uuid.UUID,
	paymentMethodID *uuid.UUID,
	quantity cart.Quantity,
	departureDate *time.Time,
) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_lines (id, user_id, destination_id, payment_method_id,
			quantity, status, departure_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, destinationID, paymentMethodID,
		quantity.Value(), cart.StatusCartActive.String(), departureDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("referenced destination or payment method does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create cart line", err)
	}
	return id, nil
}

// FindActiveByUser returns the user's open cart: lines still in cart_active.
func (r *CartLineRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error) {
	return r.queryLines(ctx, cartLineSelect+`
		WHERE cl.user_id = $1 AND cl.status = $2
		ORDER BY cl.created_at`,
		userID, cart.StatusCartActive.String())
}

// FindAllByUser returns every line regardless of status, for purchase history.
func (r *CartLineRepository) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.CartLineRM, error) {
	return r.queryLines(ctx, cartLineSelect+`
		WHERE cl.user_id = $1
		ORDER BY cl.created_at DESC`,
		userID)
}

func (r *CartLineRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*readmodel.CartLineRM, error) {
	row := r.db.QueryRow(ctx, cartLineSelect+`
		WHERE cl.id = $1 AND cl.user_id = $2`,
		id, userID)

	rm, err := scanCartLine(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("cart line not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart line", err)
	}
	return rm, nil
}

func (r *CartLineRepository) UpdateQuantity(ctx context.Context, id, userID uuid.UUID, quantity cart.Quantity) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE cart_lines
		SET quantity = $3
		WHERE id = $1 AND user_id = $2`,
		id, userID, quantity.Value())
	if err != nil {
		return infra.WrapRepoErr("failed to update cart line quantity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CartLineRepository) UpdateDepartureDate(ctx context.Context, id, userID uuid.UUID, date time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE cart_lines
		SET departure_date = $3
		WHERE id = $1 AND user_id = $2`,
		id, userID, date)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart line departure date", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Delete removes a line outright. Only explicit user removal goes through
// here; the payment flow never deletes lines.
func (r *CartLineRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM cart_lines
		WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart line", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// FindActiveByUserAndDestination locates the cart_active line a checkout item
// refers to. Runs on the checkout transaction.
func (r *CartLineRepository) FindActiveByUserAndDestination(ctx context.Context, tx DBTX, userID, destinationID uuid.UUID) (*readmodel.CartLineRM, error) {
	row := tx.QueryRow(ctx, cartLineSelect+`
		WHERE cl.user_id = $1 AND cl.destination_id = $2 AND cl.status = $3
		ORDER BY cl.created_at
		LIMIT 1`,
		userID, destinationID, cart.StatusCartActive.String())

	rm, err := scanCartLine(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("no active cart line for destination", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active cart line", err)
	}
	return rm, nil
}

// MarkInProcess stamps a line with the checkout attempt's correlation id and
// the requested quantity, moving it to in_process.
func (r *CartLineRepository) MarkInProcess(ctx context.Context, tx DBTX, id uuid.UUID, quantity cart.Quantity, externalReference string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE cart_lines
		SET status = $2, quantity = $3, external_reference = $4, status_updated_at = $5
		WHERE id = $1`,
		id, cart.StatusInProcess.String(), quantity.Value(), externalReference, time.Now())
	if err != nil {
		return infra.WrapRepoErr("failed to mark cart line in process", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart line not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// IDsByExternalReference resolves a correlation id to the concrete line ids it
// covers, so the follow-up write is a single batched UPDATE over that list.
func (r *CartLineRepository) IDsByExternalReference(ctx context.Context, tx DBTX, externalReference string) ([]uuid.UUID, error) {
	rows, err := tx.Query(ctx, `
		SELECT id FROM cart_lines WHERE external_reference = $1`,
		externalReference)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query cart lines by external reference", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart line ids", err)
	}
	return ids, nil
}

// UpdatePreferenceByIDs records the gateway preference id on every line of a
// successful checkout attempt.
func (r *CartLineRepository) UpdatePreferenceByIDs(ctx context.Context, tx DBTX, ids []uuid.UUID, preferenceID string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		UPDATE cart_lines
		SET preference_id = $2, status_updated_at = $3
		WHERE id = ANY($1)`,
		ids, preferenceID, time.Now())
	if err != nil {
		return infra.WrapRepoErr("failed to record preference id", err)
	}
	return nil
}

// RevertToCartActiveByIDs undoes a checkout attempt after a gateway failure:
// lines return to cart_active with correlation and preference ids cleared.
func (r *CartLineRepository) RevertToCartActiveByIDs(ctx context.Context, tx DBTX, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		UPDATE cart_lines
		SET status = $2, external_reference = NULL, preference_id = NULL,
		    status_updated_at = $3
		WHERE id = ANY($1)`,
		ids, cart.StatusCartActive.String(), time.Now())
	if err != nil {
		return infra.WrapRepoErr("failed to revert cart lines", err)
	}
	return nil
}

// ApplyPaymentStatusByIDs is the webhook reconciliation write: one UPDATE over
// the resolved id list, overwriting status and payment id unconditionally so
// replayed notifications converge on the same state. purchasedAt is only
// non-nil for approved payments.
func (r *CartLineRepository) ApplyPaymentStatusByIDs(
	ctx context.Context,
	tx DBTX,
	ids []uuid.UUID,
	status cart.PaymentStatus,
	paymentID string,
	purchasedAt *time.Time,
) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		UPDATE cart_lines
		SET status = $2, payment_id = $3, status_updated_at = $4,
		    purchased_at = COALESCE($5, purchased_at)
		WHERE id = ANY($1)`,
		ids, status.String(), paymentID, time.Now(), purchasedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to apply payment status", err)
	}
	return nil
}

func (r *CartLineRepository) queryLines(ctx context.Context, sql string, args ...any) ([]*readmodel.CartLineRM, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query cart lines", err)
	}
	defer rows.Close()

	var result []*readmodel.CartLineRM
	for rows.Next() {
		rm, err := scanCartLine(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart lines", err)
	}
	return result, nil
}

func scanCartLine(row pgx.Row) (*readmodel.CartLineRM, error) {
	var rm readmodel.CartLineRM
	err := row.Scan(&rm.ID, &rm.UserID, &rm.DestinationID, &rm.DestinationName,
		&rm.PaymentMethodID, &rm.Quantity, &rm.Status, &rm.ExternalReference,
		&rm.PreferenceID, &rm.PaymentID, &rm.DepartureDate, &rm.UnitPrice,
		&rm.Total, &rm.CreatedAt, &rm.StatusUpdatedAt, &rm.PurchasedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
