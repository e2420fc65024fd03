package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StateResponse is what the view renderer consumes: the authenticated
// identity (if any) and the current navigation state.
type StateResponse struct {
	Authenticated   bool     `json:"authenticated"`
	User            *User    `json:"user,omitempty"`
	CurrentPage     Page     `json:"current_page"`
	SelectedProduct *Product `json:"selected_product,omitempty"`
}

// GatewayErrorResponse is the failure body of the auth gateway endpoint,
// discriminated solely by HTTP status.
type GatewayErrorResponse struct {
	Error string `json:"error"`
}
