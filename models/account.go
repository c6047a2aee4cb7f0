package models

// AccountLinkRequest is the incoming request to onboard a host onto the
// payment provider.
type AccountLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AccountLinkResponse contains the single-use onboarding link and the
// identifier of the connected account it belongs to. The link expiry is
// provider-defined.
type AccountLinkResponse struct {
	URL       string `json:"url"`
	AccountID string `json:"accountId"`
}
