package cart

// PaymentStatus tracks a cart line from "sitting in the cart" through the
// payment lifecycle. Statuses after in_process mirror the gateway's payment
// status vocabulary verbatim, so webhook updates are pure overwrites.
type PaymentStatus string

const (
	StatusCartActive PaymentStatus = "cart_active"
	StatusInProcess  PaymentStatus = "in_process"
	StatusApproved   PaymentStatus = "approved"
	StatusRejected   PaymentStatus = "rejected"
	StatusCancelled  PaymentStatus = "cancelled"
	StatusPending    PaymentStatus = "pending"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusCartActive, StatusInProcess, StatusApproved, StatusRejected, StatusCancelled, StatusPending:
		return true
	default:
		return false
	}
}

// IsSettled reports whether the gateway has delivered a final verdict.
func (s PaymentStatus) IsSettled() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}
