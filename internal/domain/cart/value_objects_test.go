//go:build unit

package cart_test

import (
	"strings"
	"testing"

	"tripcart/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	cases := []struct {
		name  string
		input int32
		errIs error
	}{
		{name: "one is the minimum", input: 1},
		{name: "larger quantities pass through", input: 42},
		{name: "zero is rejected", input: 0, errIs: cart.ErrInvalidQuantity},
		{name: "negative is rejected", input: -3, errIs: cart.ErrInvalidQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := cart.NewQuantity(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, q.Value())
		})
	}
}

func TestNewExternalReference(t *testing.T) {
	userID := uuid.New()

	ref := cart.NewExternalReference(userID)

	require.True(t, strings.HasPrefix(ref, "order-"+userID.String()+"-"))

	// The trailing segment is a fresh UUID, so two attempts never collide.
	suffix := strings.TrimPrefix(ref, "order-"+userID.String()+"-")
	_, err := uuid.Parse(suffix)
	require.NoError(t, err)

	assert.NotEqual(t, ref, cart.NewExternalReference(userID))
}

func TestPaymentStatus(t *testing.T) {
	t.Run("known statuses are valid", func(t *testing.T) {
		for _, s := range []cart.PaymentStatus{
			cart.StatusCartActive,
			cart.StatusInProcess,
			cart.StatusApproved,
			cart.StatusRejected,
			cart.StatusCancelled,
			cart.StatusPending,
		} {
			assert.True(t, s.IsValid(), s.String())
		}
		assert.False(t, cart.PaymentStatus("refunded_by_mail").IsValid())
	})

	t.Run("settled statuses carry a gateway verdict", func(t *testing.T) {
		assert.True(t, cart.StatusApproved.IsSettled())
		assert.True(t, cart.StatusRejected.IsSettled())
		assert.False(t, cart.StatusCartActive.IsSettled())
		assert.False(t, cart.StatusInProcess.IsSettled())
	})
}
