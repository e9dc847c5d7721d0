package dto

type DrawRequestDTO struct {
	CallerID string `json:"caller_id" validate:"required"`
}

type DrawResponseDTO struct {
	Prize     string `json:"prize"`
	Quota     int64  `json:"quota"`
	Applied   bool   `json:"applied"`
	Remaining int    `json:"remaining"`
}

type LotteryStatusResponseDTO struct {
	Enabled    bool             `json:"enabled"`
	DailyLimit int              `json:"daily_limit"`
	UsedToday  int              `json:"used_today"`
	Remaining  int              `json:"remaining"`
	Prizes     []PrizeStatusDTO `json:"prizes"`
}

type PrizeStatusDTO struct {
	Name        string  `json:"name"`
	Quota       int64   `json:"quota"`
	Probability float64 `json:"probability"`
}
