package cart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type Quantity struct {
	value int32
}

func NewQuantity(v int32) (Quantity, error) {
	if v < 1 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int32 {
	return q.value
}

// NewExternalReference builds the correlation id stored on every line of a
// checkout attempt and echoed back by the gateway in webhook deliveries.
func NewExternalReference(userID uuid.UUID) string {
	return fmt.Sprintf("order-%s-%s", userID, uuid.New())
}
