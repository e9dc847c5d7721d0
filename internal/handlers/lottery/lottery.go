package lottery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/libin99527/newapi-checkin/internal/dto"
	lotteryservice "github.com/libin99527/newapi-checkin/internal/service/lotteryservice"
	"github.com/libin99527/newapi-checkin/pkg/utils"
)

type Service interface {
	Draw(ctx context.Context, callerID string, now time.Time) (*lotteryservice.DrawResult, error)
	Status(ctx context.Context, callerID string, now time.Time) (*lotteryservice.Status, error)
}

type LotteryHandler struct {
	lotteryService Service
}

func New(lotteryService Service) *LotteryHandler {
	return &LotteryHandler{
		lotteryService: lotteryService,
	}
}

// Draw godoc
//
//	@Summary		Run one lottery draw
//	@Description	Draw a weighted-random prize; a draw consumes a daily slot even if the quota apply fails afterwards
//	@Tags			Lottery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DrawRequestDTO	true	"Draw request body"
//	@Success		200		{object}	dto.DrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Lottery disabled"
//	@Failure		404		{object}	utils.Response	"Caller not bound"
//	@Failure		429		{object}	utils.Response	"Daily draw limit reached"
//	@Failure		503		{object}	utils.Response	"Prize table unavailable"
//	@Router			/api/lottery/draw [post]
func (h *LotteryHandler) Draw(w http.ResponseWriter, r *http.Request) {
	var req dto.DrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CallerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "caller_id is required")
		return
	}

	result, err := h.lotteryService.Draw(r.Context(), req.CallerID, time.Now())
	if err != nil {
		var limitErr *lotteryservice.DailyLimitError
		switch {
		case errors.Is(err, lotteryservice.ErrLotteryDisabled):
			utils.RespondWithError(w, http.StatusForbidden, "lottery is disabled")
		case errors.Is(err, lotteryservice.ErrNotBound):
			utils.RespondWithError(w, http.StatusNotFound, "caller has no bound account")
		case errors.As(err, &limitErr):
			utils.RespondWithError(w, http.StatusTooManyRequests, limitErr.Error())
		case errors.Is(err, lotteryservice.ErrLotteryUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "lottery unavailable")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DrawResponseDTO{
		Prize:     result.Prize.Name,
		Quota:     result.Prize.Quota,
		Applied:   result.Applied,
		Remaining: result.Remaining,
	})
}

// Status godoc
//
//	@Summary		Lottery status for a caller
//	@Description	Enabled flag, daily limit, today's usage and the prize table with win probabilities
//	@Tags			Lottery
//	@Produce		json
//	@Param			caller_id	query		string	true	"Caller identity"
//	@Success		200			{object}	dto.LotteryStatusResponseDTO
//	@Failure		400			{object}	utils.Response	"Missing caller_id"
//	@Router			/api/lottery/status [get]
func (h *LotteryHandler) Status(w http.ResponseWriter, r *http.Request) {
	callerID := r.URL.Query().Get("caller_id")
	if callerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "caller_id is required")
		return
	}

	status, err := h.lotteryService.Status(r.Context(), callerID, time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	prizes := make([]dto.PrizeStatusDTO, len(status.Prizes))
	for i, p := range status.Prizes {
		prizes[i] = dto.PrizeStatusDTO{
			Name:        p.Prize.Name,
			Quota:       p.Prize.Quota,
			Probability: p.Probability,
		}
	}

	remaining := status.DailyLimit - status.UsedToday
	if remaining < 0 {
		remaining = 0
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LotteryStatusResponseDTO{
		Enabled:    status.Enabled,
		DailyLimit: status.DailyLimit,
		UsedToday:  status.UsedToday,
		Remaining:  remaining,
		Prizes:     prizes,
	})
}
