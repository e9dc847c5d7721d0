package checkin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/libin99527/newapi-checkin/internal/dto"
	checkinservice "github.com/libin99527/newapi-checkin/internal/service/checkinservice"
	"github.com/libin99527/newapi-checkin/pkg/utils"
)

type Service interface {
	CheckIn(ctx context.Context, callerID string, now time.Time) (*checkinservice.CheckinResult, error)
}

type CheckinHandler struct {
	checkinService Service
}

func New(checkinService Service) *CheckinHandler {
	return &CheckinHandler{
		checkinService: checkinService,
	}
}

// CheckIn godoc
//
//	@Summary		Daily check-in
//	@Description	Grant the daily quota to the caller's bound New-API account, at most once per civil day
//	@Tags			Checkin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckinRequestDTO	true	"Check-in request body"
//	@Success		200		{object}	dto.CheckinResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Caller not bound"
//	@Failure		409		{object}	utils.Response	"Already checked in today"
//	@Failure		502		{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/checkin [post]
func (h *CheckinHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckinRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CallerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "caller_id is required")
		return
	}

	result, err := h.checkinService.CheckIn(r.Context(), req.CallerID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, checkinservice.ErrNotBound):
			utils.RespondWithError(w, http.StatusNotFound, "caller has no bound account")
		case errors.Is(err, checkinservice.ErrAlreadyCheckedIn):
			utils.RespondWithError(w, http.StatusConflict, "already checked in today")
		case errors.Is(err, checkinservice.ErrRemoteUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "ledger unavailable, try again later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckinResponseDTO{
		Account: result.Account,
		Amount:  result.Amount,
	})
}
