package response

// CheckoutResponse hands the storefront everything it needs to send the buyer
// to the hosted checkout page and later recognize the webhook callbacks.
type CheckoutResponse struct {
	InitPoint         string `json:"init_point"`
	PreferenceID      string `json:"preference_id"`
	ExternalReference string `json:"external_reference"`
}

// PaymentRedirectResponse echoes the gateway's redirect query parameters back
// to the browser.
type PaymentRedirectResponse struct {
	Message      string `json:"message"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
	PreferenceID string `json:"preference_id"`
}
