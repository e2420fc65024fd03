package model

// User is the account record returned by the auth gateway.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Session is an authenticated identity plus its opaque token. A session is
// valid only when both fields are populated; a missing token or user record
// invalidates the whole session.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AuthResponse is the success body of the auth gateway endpoint.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
