package api

// ErrorResponse is the JSON error envelope returned by all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SaleRequest is the payload for recording a sale.
type SaleRequest struct {
	Quantity int `json:"quantity"`
}

// PinRequest is the payload for setting or verifying the admin PIN.
type PinRequest struct {
	Pin string `json:"pin"`
}

// LoginResponse reports the outcome of an admin login attempt.
type LoginResponse struct {
	Valid bool `json:"valid"`
}

// ThemeRequest is the payload for switching the storefront theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// DemoModeResponse reports the demo mode state after a toggle.
type DemoModeResponse struct {
	DemoMode bool `json:"demo_mode"`
}

// ExportFileResponse reports where an export file was written.
type ExportFileResponse struct {
	Path string `json:"path"`
}
