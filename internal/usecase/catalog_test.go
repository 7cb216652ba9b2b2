//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra"
	"tripcart/internal/usecase"
	"tripcart/internal/usecase/readmodel"
	usecasemock "tripcart/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogUseCaseTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockDestinationRepo *usecasemock.MockDestinationRepository
	mockPaymentRepo     *usecasemock.MockPaymentMethodRepository
	mockAboutRepo       *usecasemock.MockAboutRepository
	mockCache           *usecasemock.MockCatalogCache
	uc                  usecase.CatalogUseCase
}

func (s *CatalogUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDestinationRepo = usecasemock.NewMockDestinationRepository(s.mockCtrl)
	s.mockPaymentRepo = usecasemock.NewMockPaymentMethodRepository(s.mockCtrl)
	s.mockAboutRepo = usecasemock.NewMockAboutRepository(s.mockCtrl)
	s.mockCache = usecasemock.NewMockCatalogCache(s.mockCtrl)
	s.uc = usecase.NewCatalogUseCase(s.mockDestinationRepo, s.mockPaymentRepo, s.mockAboutRepo, s.mockCache)
}

func (s *CatalogUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CatalogUseCaseTestSuite))
}

func (s *CatalogUseCaseTestSuite) destinationReq() reqdto.DestinationRequest {
	return reqdto.DestinationRequest{
		Name:           "Iguazu Falls",
		Description:    "Three-day trip",
		UnitPrice:      250000,
		AvailableCount: 30,
	}
}

func (s *CatalogUseCaseTestSuite) TestListDestinations() {
	ctx := context.Background()
	destinations := []*readmodel.DestinationRM{{ID: uuid.New(), Name: "Iguazu Falls"}}

	s.Run("cache hit skips the database", func() {
		s.mockCache.EXPECT().GetDestinations(ctx).Return(destinations, nil)

		got, err := s.uc.ListDestinations(ctx)

		s.Require().NoError(err)
		s.Equal(destinations, got)
	})

	s.Run("cache miss reads the database and repopulates", func() {
		s.mockCache.EXPECT().GetDestinations(ctx).Return(nil, nil)
		s.mockDestinationRepo.EXPECT().List(ctx).Return(destinations, nil)
		s.mockCache.EXPECT().SetDestinations(ctx, destinations).Return(nil)

		got, err := s.uc.ListDestinations(ctx)

		s.Require().NoError(err)
		s.Equal(destinations, got)
	})

	s.Run("cache read failure degrades to the database", func() {
		s.mockCache.EXPECT().GetDestinations(ctx).Return(nil, errors.New("redis down"))
		s.mockDestinationRepo.EXPECT().List(ctx).Return(destinations, nil)
		s.mockCache.EXPECT().SetDestinations(ctx, destinations).Return(errors.New("redis down"))

		got, err := s.uc.ListDestinations(ctx)

		s.Require().NoError(err)
		s.Equal(destinations, got)
	})

	s.Run("database failure is marked", func() {
		s.mockCache.EXPECT().GetDestinations(ctx).Return(nil, nil)
		s.mockDestinationRepo.EXPECT().List(ctx).Return(nil, infra.WrapRepoErr("query failed", errors.New("boom")))

		_, err := s.uc.ListDestinations(ctx)

		s.ErrorIs(err, usecase.ErrCatalogDatabaseFailed)
	})
}

func (s *CatalogUseCaseTestSuite) TestCreateDestination() {
	ctx := context.Background()

	s.Run("success invalidates the cache", func() {
		created := &readmodel.DestinationRM{ID: uuid.New(), Name: "Iguazu Falls"}
		s.mockDestinationRepo.EXPECT().Create(ctx, gomock.Any()).Return(created, nil)
		s.mockCache.EXPECT().InvalidateDestinations(ctx).Return(nil)

		got, err := s.uc.CreateDestination(ctx, s.destinationReq())

		s.Require().NoError(err)
		s.Equal(created, got)
	})

	s.Run("domain validation failure", func() {
		bad := s.destinationReq()
		bad.UnitPrice = -1

		_, err := s.uc.CreateDestination(ctx, bad)

		s.ErrorIs(err, usecase.ErrCatalogDomainValidation)
	})

	s.Run("unknown category or payment method", func() {
		s.mockDestinationRepo.EXPECT().Create(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("fk violation", errors.New("fk"), infra.KindForeignKeyViolated))

		_, err := s.uc.CreateDestination(ctx, s.destinationReq())

		s.ErrorIs(err, usecase.ErrInvalidReference)
	})
}

func (s *CatalogUseCaseTestSuite) TestDeleteDestination() {
	ctx := context.Background()
	id := uuid.New()

	s.Run("success invalidates the cache", func() {
		s.mockDestinationRepo.EXPECT().Delete(ctx, id).Return(nil)
		s.mockCache.EXPECT().InvalidateDestinations(ctx).Return(nil)

		s.NoError(s.uc.DeleteDestination(ctx, id))
	})

	s.Run("destination referenced by cart lines", func() {
		s.mockDestinationRepo.EXPECT().Delete(ctx, id).
			Return(infra.WrapRepoErr("fk violation", errors.New("fk"), infra.KindForeignKeyViolated))

		s.ErrorIs(s.uc.DeleteDestination(ctx, id), usecase.ErrDestinationInUse)
	})

	s.Run("destination not found", func() {
		s.mockDestinationRepo.EXPECT().Delete(ctx, id).Return(notFoundErr())

		s.ErrorIs(s.uc.DeleteDestination(ctx, id), usecase.ErrDestinationNotFound)
	})
}

func (s *CatalogUseCaseTestSuite) TestPaymentMethods() {
	ctx := context.Background()
	id := uuid.New()

	s.Run("list", func() {
		methods := []*readmodel.PaymentMethodRM{{ID: id, Name: "credit_card"}}
		s.mockPaymentRepo.EXPECT().List(ctx).Return(methods, nil)

		got, err := s.uc.ListPaymentMethods(ctx)

		s.Require().NoError(err)
		s.Equal(methods, got)
	})

	s.Run("get not found", func() {
		s.mockPaymentRepo.EXPECT().FindByID(ctx, id).Return(nil, notFoundErr())

		_, err := s.uc.GetPaymentMethod(ctx, id)

		s.ErrorIs(err, usecase.ErrPaymentMethodNotFound)
	})
}

func (s *CatalogUseCaseTestSuite) TestAboutEntries() {
	ctx := context.Background()
	id := uuid.New()
	github := "https://github.com/example"

	s.Run("create", func() {
		created := &readmodel.AboutEntryRM{ID: id, FullName: "Ana Silva", GitHub: &github}
		s.mockAboutRepo.EXPECT().Create(ctx, "Ana Silva", &github, gomock.Nil(), gomock.Nil()).Return(created, nil)

		got, err := s.uc.CreateAboutEntry(ctx, reqdto.AboutEntryRequest{FullName: "Ana Silva", GitHub: &github})

		s.Require().NoError(err)
		s.Equal(created, got)
	})

	s.Run("update not found", func() {
		s.mockAboutRepo.EXPECT().Update(ctx, id, "Ana Silva", gomock.Nil(), gomock.Nil(), gomock.Nil()).Return(nil, notFoundErr())

		_, err := s.uc.UpdateAboutEntry(ctx, id, reqdto.AboutEntryRequest{FullName: "Ana Silva"})

		s.ErrorIs(err, usecase.ErrAboutEntryNotFound)
	})

	s.Run("delete not found", func() {
		s.mockAboutRepo.EXPECT().Delete(ctx, id).Return(notFoundErr())

		s.ErrorIs(s.uc.DeleteAboutEntry(ctx, id), usecase.ErrAboutEntryNotFound)
	})
}
