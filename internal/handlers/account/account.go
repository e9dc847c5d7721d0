package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/libin99527/newapi-checkin/internal/domain"
	"github.com/libin99527/newapi-checkin/internal/dto"
	bindservice "github.com/libin99527/newapi-checkin/internal/service/bindservice"
	"github.com/libin99527/newapi-checkin/pkg/utils"
)

type Service interface {
	Bind(ctx context.Context, callerID, username, password string, now time.Time) (*domain.Binding, error)
	MyBinding(ctx context.Context, callerID string, now time.Time) (*bindservice.BindingStatus, error)
	Balance(ctx context.Context, callerID string) (string, *domain.AccountBalance, error)
}

type AccountHandler struct {
	bindService Service
}

func New(bindService Service) *AccountHandler {
	return &AccountHandler{
		bindService: bindService,
	}
}

// Bind godoc
//
//	@Summary		Bind a New-API account to a caller
//	@Description	Verify credentials against the New-API ledger and create the 1:1 binding
//	@Tags			Account
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BindRequestDTO	true	"Bind request body"
//	@Success		200		{object}	dto.BindResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		409		{object}	utils.Response	"Caller or account already bound"
//	@Failure		502		{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/account/bind [post]
func (h *AccountHandler) Bind(w http.ResponseWriter, r *http.Request) {
	var req dto.BindRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CallerID == "" || req.Username == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "caller_id, username and password are required")
		return
	}

	binding, err := h.bindService.Bind(r.Context(), req.CallerID, req.Username, req.Password, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, bindservice.ErrCallerAlreadyBound):
			account := ""
			if binding != nil {
				account = binding.AccountName
			}
			utils.RespondWithJSON(w, http.StatusConflict, dto.BindResponseDTO{
				Message: "caller already bound",
				Account: account,
			})
		case errors.Is(err, bindservice.ErrAccountAlreadyBound):
			utils.RespondWithError(w, http.StatusConflict, "account already bound to another caller")
		case errors.Is(err, bindservice.ErrInvalidCredential):
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, bindservice.ErrRemoteUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "ledger unavailable, try again later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BindResponseDTO{
		Message: "binding created",
		Account: binding.AccountName,
	})
}

// GetBinding godoc
//
//	@Summary		Get the caller's binding
//	@Description	Return the bound account, bind time, last check-in and whether a check-in is available today
//	@Tags			Account
//	@Produce		json
//	@Param			caller_id	query		string	true	"Caller identity"
//	@Success		200			{object}	dto.BindingResponseDTO
//	@Failure		400			{object}	utils.Response	"Missing caller_id"
//	@Failure		404			{object}	utils.Response	"Caller not bound"
//	@Router			/api/account/binding [get]
func (h *AccountHandler) GetBinding(w http.ResponseWriter, r *http.Request) {
	callerID := r.URL.Query().Get("caller_id")
	if callerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "caller_id is required")
		return
	}

	status, err := h.bindService.MyBinding(r.Context(), callerID, time.Now())
	if err != nil {
		if errors.Is(err, bindservice.ErrNotBound) {
			utils.RespondWithError(w, http.StatusNotFound, "caller has no bound account")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BindingResponseDTO{
		Account:     status.Binding.AccountName,
		BoundAt:     status.Binding.BoundAt,
		LastCheckin: status.Binding.LastCheckin,
		CanCheckin:  status.CanCheckin,
	})
}

// GetBalance godoc
//
//	@Summary		Get the bound account's remote balance
//	@Description	Read quota and used_quota of the bound New-API account
//	@Tags			Account
//	@Produce		json
//	@Param			caller_id	query		string	true	"Caller identity"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		400			{object}	utils.Response	"Missing caller_id"
//	@Failure		404			{object}	utils.Response	"Caller not bound"
//	@Failure		502			{object}	utils.Response	"Ledger unavailable"
//	@Router			/api/account/balance [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	callerID := r.URL.Query().Get("caller_id")
	if callerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "caller_id is required")
		return
	}

	account, balance, err := h.bindService.Balance(r.Context(), callerID)
	if err != nil {
		switch {
		case errors.Is(err, bindservice.ErrNotBound):
			utils.RespondWithError(w, http.StatusNotFound, "caller has no bound account")
		case errors.Is(err, bindservice.ErrRemoteUnavailable):
			utils.RespondWithError(w, http.StatusBadGateway, "ledger unavailable, try again later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Account:   account,
		Quota:     balance.Quota,
		UsedQuota: balance.UsedQuota,
	})
}
