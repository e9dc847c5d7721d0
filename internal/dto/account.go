package dto

import "time"

type BindRequestDTO struct {
	CallerID string `json:"caller_id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type BindResponseDTO struct {
	Message string `json:"message"`
	Account string `json:"account"`
}

type BindingResponseDTO struct {
	Account     string     `json:"account"`
	BoundAt     time.Time  `json:"bound_at"`
	LastCheckin *time.Time `json:"last_checkin,omitempty"`
	CanCheckin  bool       `json:"can_checkin"`
}

type BalanceResponseDTO struct {
	Account   string `json:"account"`
	Quota     int64  `json:"quota"`
	UsedQuota int64  `json:"used_quota"`
}
