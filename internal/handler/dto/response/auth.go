package response

import "skipass-api/internal/usecase/commands"

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func FromTokenPair(p *commands.TokenPair) *TokenResponse {
	return &TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

type RegisterResponse struct {
	ID string `json:"id"`
}
