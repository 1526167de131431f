package dto

type RegisterClaimantRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Aadhaar  string `json:"aadhaar" validate:"required,len=12,numeric"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginClaimantRequest struct {
	Aadhaar  string `json:"aadhaar" validate:"required,len=12,numeric"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ClaimantResponse struct {
	ClaimantID string `json:"claimant_id"`
	Name       string `json:"name"`
	Aadhaar    string `json:"aadhaar"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
}
