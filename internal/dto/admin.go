package dto

type AdminLoginRequestDTO struct {
	Secret string `json:"secret" validate:"required"`
}

type AdminLoginResponseDTO struct {
	Message string `json:"message"`
}

type AdminToggleResponseDTO struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}
