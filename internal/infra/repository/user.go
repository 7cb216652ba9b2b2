package repository

import (
	"context"
	"time"

	"tripcart/internal/domain/user"
	"tripcart/internal/infra"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const authorizedUserColumns = `id, email, first_name, last_name, role, is_active, last_login`

func (r *UserRepository) Create(
	ctx context.Context,
	tx DBTX,
	email user.Email,
	passwordHash string,
	firstName, lastName string,
	role user.Role,
) (*readmodel.AuthorizedUserRM, error) {
	row := tx.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING `+authorizedUserColumns,
		uuid.New(), email.Value(), passwordHash, firstName, lastName, role.String())

	rm, err := scanAuthorizedUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return rm, nil
}

// FindByEmail also returns the stored password hash so the auth usecase can
// compare it without a second round trip.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+authorizedUserColumns+`, password_hash
		FROM users
		WHERE email = $1`,
		email.Value())

	var rm readmodel.AuthorizedUserRM
	var hash string
	err := row.Scan(&rm.ID, &rm.Email, &rm.FirstName, &rm.LastName, &rm.Role, &rm.IsActive, &rm.LastLogin, &hash)
	if err != nil {
		if isNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+authorizedUserColumns+`
		FROM users
		WHERE id = $1`,
		id)

	rm, err := scanAuthorizedUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET last_login = $2, updated_at = $2
		WHERE id = $1`,
		userID, time.Now())
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanAuthorizedUser(row userRow) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := row.Scan(&rm.ID, &rm.Email, &rm.FirstName, &rm.LastName, &rm.Role, &rm.IsActive, &rm.LastLogin)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
