package model

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type NavigateRequest struct {
	Page string `json:"page"`
}

type SelectProductRequest struct {
	ProductID int64 `json:"product_id"`
}

// GatewayRequest is the wire body of the auth gateway endpoint. A single
// POST route dispatches on Action.
type GatewayRequest struct {
	Action   string `json:"action"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Login    string `json:"login,omitempty"`
	Password string `json:"password,omitempty"`
}
