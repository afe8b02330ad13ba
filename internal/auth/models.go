package auth

// DevLoginRequest optionally pins the user id the token is issued for.
type DevLoginRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// DevAuthResponse is returned on a successful dev login
type DevAuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	UserID      string `json:"user_id"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
