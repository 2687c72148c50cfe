package response

import "campus-parking/internal/usecase/commands"

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(r.ExpiresIn.Seconds()),
	}
}
