package dto

type LoginOfficerRequest struct {
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
	// The tier the dashboard is logging into; must match the stored role.
	Role string `json:"role" validate:"required,oneof=GramSabha SDLCOfficer block_officer DLCOfficer district_officer SuperAdmin"`
}

type RegisterOfficerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	LoginID  string `json:"login_id" validate:"required,min=4,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=GramSabha SDLCOfficer block_officer DLCOfficer district_officer SuperAdmin"`

	District      string `json:"district" validate:"omitempty,max=100"`
	Subdivision   string `json:"subdivision" validate:"omitempty,max=100"`
	GramPanchayat string `json:"gram_panchayat" validate:"omitempty,max=100"`
	GPCode        string `json:"gp_code" validate:"omitempty,max=20"`
	Village       string `json:"village" validate:"omitempty,max=100"`
}

type OfficerResponse struct {
	OfficerID     string `json:"officer_id"`
	Name          string `json:"name"`
	LoginID       string `json:"login_id"`
	Role          string `json:"role"`
	District      string `json:"district,omitempty"`
	Subdivision   string `json:"subdivision,omitempty"`
	GramPanchayat string `json:"gram_panchayat,omitempty"`
	GPCode        string `json:"gp_code,omitempty"`
	Village       string `json:"village,omitempty"`
}
