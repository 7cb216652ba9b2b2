package repository

import (
	"context"
	"time"

	"tripcart/internal/domain/catalog"
	"tripcart/internal/infra"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DestinationRepository struct {
	db DBTX
}

func NewDestinationRepository(db DBTX) *DestinationRepository {
	return &DestinationRepository{db: db}
}

const destinationColumns = `id, name, description, image_url, unit_price, departure_date,
	available_count, category_id, payment_method_id, created_at, updated_at`

func (r *DestinationRepository) Create(ctx context.Context, d *catalog.Destination) (*readmodel.DestinationRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO destinations (id, name, description, image_url, unit_price,
			departure_date, available_count, category_id, payment_method_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+destinationColumns,
		uuid.New(), d.Name(), d.Description(), d.ImageURL(), d.UnitPrice(),
		d.DepartureDate(), d.AvailableCount(), d.CategoryID(), d.PaymentMethodID())

	rm, err := scanDestination(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("referenced category or payment method does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create destination", err)
	}
	return rm, nil
}

func (r *DestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DestinationRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations
		WHERE id = $1`,
		id)

	rm, err := scanDestination(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("destination not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find destination by ID", err)
	}
	return rm, nil
}

func (r *DestinationRepository) List(ctx context.Context) ([]*readmodel.DestinationRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list destinations", err)
	}
	defer rows.Close()

	var result []*readmodel.DestinationRM
	for rows.Next() {
		rm, err := scanDestination(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan destination row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate destinations", err)
	}
	return result, nil
}

func (r *DestinationRepository) Update(ctx context.Context, id uuid.UUID, d *catalog.Destination) (*readmodel.DestinationRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE destinations
		SET name = $2, description = $3, image_url = $4, unit_price = $5,
		    departure_date = $6, available_count = $7, category_id = $8,
		    payment_method_id = $9, updated_at = $10
		WHERE id = $1
		RETURNING `+destinationColumns,
		id, d.Name(), d.Description(), d.ImageURL(), d.UnitPrice(),
		d.DepartureDate(), d.AvailableCount(), d.CategoryID(), d.PaymentMethodID(),
		time.Now())

	rm, err := scanDestination(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("destination not found", err, infra.KindNotFound)
		}
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("referenced category or payment method does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to update destination", err)
	}
	return rm, nil
}

func (r *DestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("destination is referenced by cart lines", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete destination", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("destination not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanDestination(row pgx.Row) (*readmodel.DestinationRM, error) {
	var rm readmodel.DestinationRM
	err := row.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.ImageURL, &rm.UnitPrice,
		&rm.DepartureDate, &rm.AvailableCount, &rm.CategoryID, &rm.PaymentMethodID,
		&rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
