package authclient

// AuthError is a transport or credential failure during register or login.
// Message is human-readable, either server-supplied or a generic fallback,
// and is never retried automatically.
type AuthError struct {
	Message string
	cause   error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.cause
}
