//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"tripcart/internal/domain/cart"
	reqdto "tripcart/internal/handler/dto/request"
	"tripcart/internal/infra/gateway"
	"tripcart/internal/pkg/clock"
	"tripcart/internal/pkg/errs"
	"tripcart/internal/usecase"
	usecasemock "tripcart/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCartRepo *usecasemock.MockCartLineRepository
	mockGateway  *usecasemock.MockPaymentGateway
	txBeginner   *stubTxBeginner
	now          time.Time
	uc           usecase.WebhookUseCase
}

func (s *WebhookUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCartRepo = usecasemock.NewMockCartLineRepository(s.mockCtrl)
	s.mockGateway = usecasemock.NewMockPaymentGateway(s.mockCtrl)
	s.txBeginner = &stubTxBeginner{}
	s.now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	s.uc = usecase.NewWebhookUseCase(s.mockCartRepo, s.mockGateway, clock.NewMockClock(s.now), s.txBeginner)
}

func (s *WebhookUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookUseCaseSuite(t *testing.T) {
	suite.Run(t, new(WebhookUseCaseTestSuite))
}

func (s *WebhookUseCaseTestSuite) TestProcessNotification() {
	ctx := context.Background()
	extRef := "order-" + uuid.NewString() + "-" + uuid.NewString()
	notification := reqdto.WebhookNotification{
		Topic: "payment",
		ID:    reqdto.FlexibleID("12345"),
	}

	s.Run("approved payments stamp purchased_at and commit", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockGateway.EXPECT().GetPayment(ctx, "12345").
			Return(&gateway.Payment{ID: 12345, Status: "approved", ExternalReference: extRef}, nil)
		s.mockCartRepo.EXPECT().IDsByExternalReference(ctx, gomock.Any(), extRef).Return(ids, nil)
		s.mockCartRepo.EXPECT().
			ApplyPaymentStatusByIDs(ctx, gomock.Any(), ids, cart.StatusApproved, "12345", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ []uuid.UUID, _ cart.PaymentStatus, _ string, purchasedAt *time.Time) error {
				s.Require().NotNil(purchasedAt)
				s.True(purchasedAt.Equal(s.now))
				return nil
			})

		err := s.uc.ProcessNotification(ctx, notification)

		s.Require().NoError(err)
		s.True(s.txBeginner.lastTx().committed)
	})

	s.Run("rejected payments leave purchased_at unset", func() {
		ids := []uuid.UUID{uuid.New()}
		s.mockGateway.EXPECT().GetPayment(ctx, "12345").
			Return(&gateway.Payment{ID: 12345, Status: "rejected", ExternalReference: extRef}, nil)
		s.mockCartRepo.EXPECT().IDsByExternalReference(ctx, gomock.Any(), extRef).Return(ids, nil)
		s.mockCartRepo.EXPECT().
			ApplyPaymentStatusByIDs(ctx, gomock.Any(), ids, cart.StatusRejected, "12345", gomock.Nil()).
			Return(nil)

		err := s.uc.ProcessNotification(ctx, notification)

		s.Require().NoError(err)
		s.True(s.txBeginner.lastTx().committed)
	})

	s.Run("an unknown external reference is acknowledged without writes", func() {
		s.mockGateway.EXPECT().GetPayment(ctx, "12345").
			Return(&gateway.Payment{ID: 12345, Status: "approved", ExternalReference: extRef}, nil)
		s.mockCartRepo.EXPECT().IDsByExternalReference(ctx, gomock.Any(), extRef).
			Return(nil, nil)

		err := s.uc.ProcessNotification(ctx, notification)

		s.Require().NoError(err)
		s.True(s.txBeginner.lastTx().rolledBack)
		s.False(s.txBeginner.lastTx().committed)
	})

	s.Run("non-payment topics are ignored without a gateway lookup", func() {
		err := s.uc.ProcessNotification(ctx, reqdto.WebhookNotification{
			Topic: "merchant_order",
			ID:    reqdto.FlexibleID("555"),
		})

		s.NoError(err)
	})

	s.Run("gateway lookup failure surfaces as an error for logging", func() {
		s.mockGateway.EXPECT().GetPayment(ctx, "12345").
			Return(nil, errs.New("gateway timeout"))

		err := s.uc.ProcessNotification(ctx, notification)

		s.Error(err)
	})

	s.Run("payments without an external reference are dropped", func() {
		s.mockGateway.EXPECT().GetPayment(ctx, "12345").
			Return(&gateway.Payment{ID: 12345, Status: "approved", ExternalReference: ""}, nil)

		err := s.uc.ProcessNotification(ctx, notification)

		s.NoError(err)
	})
}
