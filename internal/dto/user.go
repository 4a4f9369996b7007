package dto

// TokenRequest is the body of POST /user/token.
type TokenRequest struct {
	User string `json:"user" form:"user"`
}

// TokenResponse carries the issued token.
type TokenResponse struct {
	User  string `json:"user"`
	Token string `json:"token"`
}
