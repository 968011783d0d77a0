package auth

import "github.com/stocksight/stocksight-backend/internal/users"

// LoginRequest carries the credential pair supplied by the client.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse returns the minted token pair plus the account payload.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}

// RefreshRequest carries the expired access token and its refresh token.
type RefreshRequest struct {
	AccessToken  string
	RefreshToken string
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
