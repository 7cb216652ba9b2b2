package usecase

import (
	"context"
	"errors"

	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra"
	"tripcart/internal/infra/repository"
	"tripcart/internal/pkg/errs"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmptyUpdate     = errors.New("no fields to update")

	ErrProfileDatabaseFailed = errors.New("profile database operation failed")
)

type ProfileRepository interface {
	Create(ctx context.Context, tx repository.DBTX, userID uuid.UUID) (uuid.UUID, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProfileRM, error)
	List(ctx context.Context) ([]*readmodel.ProfileRM, error)
	UpdatePartial(ctx context.Context, userID uuid.UUID, address, telephone, documentID *string) error
	UpdatePartialByID(ctx context.Context, id uuid.UUID, address, telephone, documentID *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileUseCase interface {
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error)
	UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*readmodel.ProfileRM, error)
	ListProfiles(ctx context.Context) ([]*readmodel.ProfileRM, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*readmodel.ProfileRM, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateProfileRequest) (*readmodel.ProfileRM, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

type profileUseCaseImpl struct {
	profileRepo ProfileRepository
}

func NewProfileUseCase(profileRepo ProfileRepository) ProfileUseCase {
	return &profileUseCaseImpl{profileRepo: profileRepo}
}

func (p *profileUseCaseImpl) GetOwnProfile(ctx context.Context, userID uuid.UUID) (*readmodel.ProfileRM, error) {
	return p.findProfile(func() (*readmodel.ProfileRM, error) {
		return p.profileRepo.FindByUserID(ctx, userID)
	})
}

func (p *profileUseCaseImpl) UpdateOwnProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) (*readmodel.ProfileRM, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	if err := p.profileRepo.UpdatePartial(ctx, userID, req.Address, req.Telephone, req.DocumentID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrProfileDatabaseFailed)
	}

	return p.GetOwnProfile(ctx, userID)
}

func (p *profileUseCaseImpl) ListProfiles(ctx context.Context) ([]*readmodel.ProfileRM, error) {
	profiles, err := p.profileRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileDatabaseFailed)
	}
	return profiles, nil
}

func (p *profileUseCaseImpl) GetProfile(ctx context.Context, id uuid.UUID) (*readmodel.ProfileRM, error) {
	return p.findProfile(func() (*readmodel.ProfileRM, error) {
		return p.profileRepo.FindByID(ctx, id)
	})
}

func (p *profileUseCaseImpl) UpdateProfile(ctx context.Context, id uuid.UUID, req reqdto.UpdateProfileRequest) (*readmodel.ProfileRM, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	if err := p.profileRepo.UpdatePartialByID(ctx, id, req.Address, req.Telephone, req.DocumentID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrProfileDatabaseFailed)
	}

	return p.GetProfile(ctx, id)
}

func (p *profileUseCaseImpl) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if err := p.profileRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProfileNotFound
		}
		return errs.Mark(err, ErrProfileDatabaseFailed)
	}
	return nil
}

func (p *profileUseCaseImpl) findProfile(find func() (*readmodel.ProfileRM, error)) (*readmodel.ProfileRM, error) {
	profile, err := find()
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrProfileDatabaseFailed)
	}
	return profile, nil
}
