package usecase

import (
	"context"
	"errors"
	"log/slog"

	"tripcart/internal/domain/user"
	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra"
	"tripcart/internal/infra/repository"
	"tripcart/internal/pkg/errs"
	"tripcart/internal/pkg/jwt"
	"tripcart/internal/pkg/password"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAccountInactive        = errors.New("account is inactive")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")

	ErrAuthDomainValidation = errors.New("auth domain validation failed")
	ErrAuthDatabaseFailed   = errors.New("auth database operation failed")
)

type UserRepository interface {
	Create(ctx context.Context, tx repository.DBTX, email user.Email, passwordHash string, firstName, lastName string, role user.Role) (*readmodel.AuthorizedUserRM, error)
	FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type ProfileCreator interface {
	Create(ctx context.Context, tx repository.DBTX, userID uuid.UUID) (uuid.UUID, error)
}

type AuthResult struct {
	Tokens *jwt.TokenPair
	User   *readmodel.AuthorizedUserRM
}

type AuthUseCase interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

type authUseCaseImpl struct {
	userRepo    UserRepository
	profileRepo ProfileCreator
	jwtService  *jwt.Service
	db          TxBeginner
}

func NewAuthUseCase(
	userRepo UserRepository,
	profileRepo ProfileCreator,
	jwtService *jwt.Service,
	db TxBeginner,
) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtService:  jwtService,
		db:          db,
	}
}

// Register creates the user and their default profile in one transaction, so
// a user row never exists without a profile row.
func (a *authUseCaseImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	registration, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthDomainValidation)
	}

	hash, err := password.HashPassword(registration.Credentials().Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	tx, err := a.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthDatabaseFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			// Only log rollback errors for uncommitted transactions
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback transaction", "error", rollbackErr)
			}
		}
	}()

	userRM, err := a.userRepo.Create(ctx, tx,
		registration.Credentials().Email(), hash,
		registration.FirstName(), registration.LastName(),
		user.RoleCustomer)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errs.Mark(err, ErrAuthDatabaseFailed)
	}

	if _, err := a.profileRepo.Create(ctx, tx, userRM.ID); err != nil {
		return nil, errs.Mark(err, ErrAuthDatabaseFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrAuthDatabaseFailed)
	}

	return a.issueTokens(userRM)
}

func (a *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userRM, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthDatabaseFailed)
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !userRM.IsActive {
		return nil, ErrAccountInactive
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userRM.ID); err != nil {
		// A stale last_login is not worth failing the login over.
		slog.Warn("failed to update last login", "user_id", userRM.ID, "error", err)
	}

	return a.issueTokens(userRM)
}

func (a *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userRM, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, errs.Mark(err, ErrAuthDatabaseFailed)
	}

	if !userRM.IsActive {
		return nil, ErrAccountInactive
	}

	return a.issueTokens(userRM)
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrAuthDatabaseFailed)
	}
	return userRM, nil
}

func (a *authUseCaseImpl) issueTokens(userRM *readmodel.AuthorizedUserRM) (*AuthResult, error) {
	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	tokens, err := a.jwtService.GenerateTokenPair(userRM.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate tokens")
	}

	return &AuthResult{Tokens: tokens, User: userRM}, nil
}
