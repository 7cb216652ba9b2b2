//go:build unit

package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"tripcart/internal/domain/cart"
	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra"
	"tripcart/internal/infra/gateway"
	"tripcart/internal/pkg/config"
	"tripcart/internal/pkg/errs"
	"tripcart/internal/usecase"
	"tripcart/internal/usecase/readmodel"
	usecasemock "tripcart/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockCartRepo        *usecasemock.MockCartLineRepository
	mockDestinationRepo *usecasemock.MockDestinationRepository
	mockUserRepo        *usecasemock.MockUserRepository
	mockGateway         *usecasemock.MockPaymentGateway
	txBeginner          *stubTxBeginner
	uc                  usecase.CheckoutUseCase
	userID              uuid.UUID
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCartRepo = usecasemock.NewMockCartLineRepository(s.mockCtrl)
	s.mockDestinationRepo = usecasemock.NewMockDestinationRepository(s.mockCtrl)
	s.mockUserRepo = usecasemock.NewMockUserRepository(s.mockCtrl)
	s.mockGateway = usecasemock.NewMockPaymentGateway(s.mockCtrl)
	s.txBeginner = &stubTxBeginner{}
	s.uc = usecase.NewCheckoutUseCase(
		s.mockCartRepo,
		s.mockDestinationRepo,
		s.mockUserRepo,
		s.mockGateway,
		config.NewTestConfig().Server,
		s.txBeginner,
	)
	s.userID = uuid.New()
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

func (s *CheckoutUseCaseTestSuite) buyer() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:       s.userID,
		Email:    "traveler@example.com",
		Role:     "customer",
		IsActive: true,
	}
}

func (s *CheckoutUseCaseTestSuite) activeLine(destinationID uuid.UUID) *readmodel.CartLineRM {
	return &readmodel.CartLineRM{
		ID:            uuid.New(),
		UserID:        s.userID,
		DestinationID: destinationID,
		Status:        "cart_active",
		Quantity:      1,
	}
}

// captureLogs swaps the default logger for one writing into the returned
// buffer and restores it when the subtest ends.
func (s *CheckoutUseCaseTestSuite) captureLogs() *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	s.T().Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func (s *CheckoutUseCaseTestSuite) TestCreateCheckout() {
	ctx := context.Background()
	destinationID := uuid.New()
	req := reqdto.CreateCheckoutRequest{
		Items: []reqdto.CheckoutItem{{DestinationID: destinationID, Quantity: 2}},
	}
	quantity, err := cart.NewQuantity(2)
	s.Require().NoError(err)

	s.Run("success: marks lines in_process and commits the preference id", func() {
		logs := s.captureLogs()

		line := s.activeLine(destinationID)
		s.mockUserRepo.EXPECT().FindByID(ctx, s.userID).Return(s.buyer(), nil)
		s.mockDestinationRepo.EXPECT().FindByID(ctx, destinationID).
			Return(&readmodel.DestinationRM{ID: destinationID, Name: "Mendoza", UnitPrice: 120000}, nil)
		s.mockCartRepo.EXPECT().
			FindActiveByUserAndDestination(ctx, gomock.Any(), s.userID, destinationID).
			Return(line, nil)
		s.mockCartRepo.EXPECT().
			MarkInProcess(ctx, gomock.Any(), line.ID, quantity, gomock.Any()).
			Return(nil)
		s.mockGateway.EXPECT().CurrencyID().Return("ARS")
		s.mockGateway.EXPECT().CreatePreference(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, prefReq gateway.PreferenceRequest) (*gateway.Preference, error) {
				s.Require().Len(prefReq.Items, 1)
				s.Equal("Mendoza", prefReq.Items[0].Title)
				s.Equal(int32(2), prefReq.Items[0].Quantity)
				s.Equal("traveler@example.com", prefReq.Payer.Email)
				return &gateway.Preference{
					ID:                "pref-123",
					InitPoint:         "https://gateway.example.com/init/pref-123",
					ExternalReference: prefReq.ExternalReference,
				}, nil
			})
		s.mockCartRepo.EXPECT().
			UpdatePreferenceByIDs(ctx, gomock.Any(), []uuid.UUID{line.ID}, "pref-123").
			Return(nil)

		result, err := s.uc.CreateCheckout(ctx, s.userID, req)

		s.Require().NoError(err)
		s.Equal("pref-123", result.PreferenceID)
		s.Equal("https://gateway.example.com/init/pref-123", result.InitPoint)
		s.NotEmpty(result.ExternalReference)
		s.True(s.txBeginner.lastTx().committed)
		s.False(strings.Contains(logs.String(), "failed to rollback transaction"),
			"a committed checkout must not log a rollback warning")
	})

	s.Run("gateway rejection reverts the lines and commits the revert", func() {
		line := s.activeLine(destinationID)
		s.mockUserRepo.EXPECT().FindByID(ctx, s.userID).Return(s.buyer(), nil)
		s.mockDestinationRepo.EXPECT().FindByID(ctx, destinationID).
			Return(&readmodel.DestinationRM{ID: destinationID, Name: "Mendoza", UnitPrice: 120000}, nil)
		s.mockCartRepo.EXPECT().
			FindActiveByUserAndDestination(ctx, gomock.Any(), s.userID, destinationID).
			Return(line, nil)
		s.mockCartRepo.EXPECT().
			MarkInProcess(ctx, gomock.Any(), line.ID, quantity, gomock.Any()).
			Return(nil)
		s.mockGateway.EXPECT().CurrencyID().Return("ARS")
		s.mockGateway.EXPECT().CreatePreference(ctx, gomock.Any()).
			Return(nil, errs.New("gateway says no"))
		s.mockCartRepo.EXPECT().
			RevertToCartActiveByIDs(ctx, gomock.Any(), []uuid.UUID{line.ID}).
			Return(nil)

		_, err := s.uc.CreateCheckout(ctx, s.userID, req)

		s.ErrorIs(err, usecase.ErrGatewayFailure)
		s.True(s.txBeginner.lastTx().committed, "the revert must be committed, not rolled back")
	})

	s.Run("unmatchable items are skipped, the rest go through", func() {
		matched := uuid.New()
		unknownDest := uuid.New()
		noLine := uuid.New()
		mixed := reqdto.CreateCheckoutRequest{
			Items: []reqdto.CheckoutItem{
				{DestinationID: uuid.New(), Quantity: 0},
				{DestinationID: unknownDest, Quantity: 1},
				{DestinationID: noLine, Quantity: 1},
				{DestinationID: matched, Quantity: 2},
			},
		}

		line := s.activeLine(matched)
		s.mockUserRepo.EXPECT().FindByID(ctx, s.userID).Return(s.buyer(), nil)
		s.mockDestinationRepo.EXPECT().FindByID(ctx, unknownDest).Return(nil, notFoundErr())
		s.mockDestinationRepo.EXPECT().FindByID(ctx, noLine).
			Return(&readmodel.DestinationRM{ID: noLine, Name: "Salta", UnitPrice: 80000}, nil)
		s.mockCartRepo.EXPECT().
			FindActiveByUserAndDestination(ctx, gomock.Any(), s.userID, noLine).
			Return(nil, notFoundErr())
		s.mockDestinationRepo.EXPECT().FindByID(ctx, matched).
			Return(&readmodel.DestinationRM{ID: matched, Name: "Bariloche", UnitPrice: 95000}, nil)
		s.mockCartRepo.EXPECT().
			FindActiveByUserAndDestination(ctx, gomock.Any(), s.userID, matched).
			Return(line, nil)
		s.mockCartRepo.EXPECT().
			MarkInProcess(ctx, gomock.Any(), line.ID, quantity, gomock.Any()).
			Return(nil)
		s.mockGateway.EXPECT().CurrencyID().Return("ARS")
		s.mockGateway.EXPECT().CreatePreference(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, prefReq gateway.PreferenceRequest) (*gateway.Preference, error) {
				s.Require().Len(prefReq.Items, 1)
				s.Equal("Bariloche", prefReq.Items[0].Title)
				return &gateway.Preference{ID: "pref-456", InitPoint: "https://gateway.example.com/init/pref-456"}, nil
			})
		s.mockCartRepo.EXPECT().
			UpdatePreferenceByIDs(ctx, gomock.Any(), []uuid.UUID{line.ID}, "pref-456").
			Return(nil)

		result, err := s.uc.CreateCheckout(ctx, s.userID, mixed)

		s.Require().NoError(err)
		s.Equal("pref-456", result.PreferenceID)
	})

	s.Run("error: nothing matchable means no gateway call and no commit", func() {
		s.mockUserRepo.EXPECT().FindByID(ctx, s.userID).Return(s.buyer(), nil)
		s.mockDestinationRepo.EXPECT().FindByID(ctx, destinationID).
			Return(&readmodel.DestinationRM{ID: destinationID, Name: "Mendoza", UnitPrice: 120000}, nil)
		s.mockCartRepo.EXPECT().
			FindActiveByUserAndDestination(ctx, gomock.Any(), s.userID, destinationID).
			Return(nil, notFoundErr())

		_, err := s.uc.CreateCheckout(ctx, s.userID, req)

		s.ErrorIs(err, usecase.ErrNoValidItems)
		s.True(s.txBeginner.lastTx().rolledBack)
		s.False(s.txBeginner.lastTx().committed)
	})

	s.Run("error: unknown user", func() {
		s.mockUserRepo.EXPECT().FindByID(ctx, s.userID).Return(nil, notFoundErr())

		_, err := s.uc.CreateCheckout(ctx, s.userID, req)

		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("error: user lookup failure is marked", func() {
		s.mockUserRepo.EXPECT().FindByID(ctx, s.userID).
			Return(nil, infra.WrapRepoErr("query failed", errors.New("conn refused")))

		_, err := s.uc.CreateCheckout(ctx, s.userID, req)

		s.ErrorIs(err, usecase.ErrCheckoutDatabaseFailed)
	})
}
