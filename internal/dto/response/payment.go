package response

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type VerificationResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`

	// UpstreamRejected marks a verification the provider refused outright,
	// which the API surfaces as a 400 rather than a 200.
	UpstreamRejected bool `json:"-"`
}
