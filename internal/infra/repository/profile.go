package repository

import (
	"context"

	"tripcart/internal/infra"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileSelect = `
	SELECT p.id, p.user_id, u.email, u.first_name, u.last_name,
	       p.address, p.location, p.telephone, p.document_id
	FROM profiles p
	JOIN users u ON u.id = p.user_id`

// Create inserts the default (empty) profile for a freshly registered user.
// Runs inside the registration transaction so a user never exists without one.
func (r *ProfileRepository) Create(ctx context.Context, tx DBTX, userID uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, `
		INSERT INTO profiles (id, user_id)
		VALUES ($1, $2)`,
		id, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("profile already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create profile", err)
	}
	return id, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error) {
	row := r.db.QueryRow(ctx, profileSelect+` WHERE p.user_id = $1`, userID)
	return r.scanProfile(row, "failed to find profile by user ID")
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProfileRM, error) {
	row := r.db.QueryRow(ctx, profileSelect+` WHERE p.id = $1`, id)
	return r.scanProfile(row, "failed to find profile by ID")
}

func (r *ProfileRepository) List(ctx context.Context) ([]*readmodel.ProfileRM, error) {
	rows, err := r.db.Query(ctx, profileSelect+` ORDER BY u.email`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles", err)
	}
	defer rows.Close()

	var result []*readmodel.ProfileRM
	for rows.Next() {
		var rm readmodel.ProfileRM
		if err := scanProfileColumns(rows, &rm); err != nil {
			return nil, infra.WrapRepoErr("failed to scan profile row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate profiles", err)
	}
	return result, nil
}

// UpdatePartial applies only the provided fields; nil pointers leave the
// stored value untouched.
func (r *ProfileRepository) UpdatePartial(ctx context.Context, userID uuid.UUID, address, telephone, documentID *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET address     = COALESCE($2, address),
		    telephone   = COALESCE($3, telephone),
		    document_id = COALESCE($4, document_id)
		WHERE user_id = $1`,
		userID, address, telephone, documentID)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// UpdatePartialByID is the admin variant of UpdatePartial, keyed by profile
// id instead of the owning user.
func (r *ProfileRepository) UpdatePartialByID(ctx context.Context, id uuid.UUID, address, telephone, documentID *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET address     = COALESCE($2, address),
		    telephone   = COALESCE($3, telephone),
		    document_id = COALESCE($4, document_id)
		WHERE id = $1`,
		id, address, telephone, documentID)
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("profile not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ProfileRepository) scanProfile(row pgx.Row, msg string) (*readmodel.ProfileRM, error) {
	var rm readmodel.ProfileRM
	if err := scanProfileColumns(row, &rm); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return &rm, nil
}

func scanProfileColumns(row pgx.Row, rm *readmodel.ProfileRM) error {
	return row.Scan(&rm.ID, &rm.UserID, &rm.Email, &rm.FirstName, &rm.LastName,
		&rm.Address, &rm.Location, &rm.Telephone, &rm.DocumentID)
}
