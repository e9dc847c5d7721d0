package dto

type CheckinRequestDTO struct {
	CallerID string `json:"caller_id" validate:"required"`
}

type CheckinResponseDTO struct {
	Account string `json:"account"`
	Amount  int64  `json:"amount"`
}
