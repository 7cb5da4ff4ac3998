// Package i18n provides internationalization support for the storefront service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyCartNotFound indicates an unknown cart ID.
	ErrKeyCartNotFound = "error.cart_not_found"
	// ErrKeyItemNotFound indicates an unknown catalog item ID.
	ErrKeyItemNotFound = "error.item_not_found"
	// ErrKeyGateNotFound indicates an unknown or expired risk gate.
	ErrKeyGateNotFound = "error.gate_not_found"
	// ErrKeyCartEmpty indicates a checkout attempt on an empty cart.
	ErrKeyCartEmpty = "error.cart_empty"
	// ErrKeyMissingBuyerInfo indicates missing buyer name or email.
	ErrKeyMissingBuyerInfo = "error.validation.buyer_info"
	// ErrKeyMissingCoBuyerInfo indicates a split checkout without co-buyer email.
	ErrKeyMissingCoBuyerInfo = "error.validation.co_buyer_info"
	// ErrKeySettlementFailed indicates a failed (retryable) settlement.
	ErrKeySettlementFailed = "error.settlement_failed"
	// ErrKeyCheckoutInFlight indicates a settlement already running for the cart.
	ErrKeyCheckoutInFlight = "error.checkout_in_flight"
	// ErrKeyInvalidTheme indicates an unknown theme value.
	ErrKeyInvalidTheme = "error.invalid_theme"
)
