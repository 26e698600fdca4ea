package model

const TokenTypeBearer = "bearer"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is bound from either a JSON body or an OAuth2 password form.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type DoctorTokenResponse struct {
	Doctor      *Doctor `json:"doctor"`
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
}
