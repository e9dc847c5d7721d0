package admin

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/libin99527/newapi-checkin/internal/config"
	"github.com/libin99527/newapi-checkin/internal/dto"
	"github.com/libin99527/newapi-checkin/pkg/auth"
	"github.com/libin99527/newapi-checkin/pkg/utils"
)

const tokenTTL = time.Hour

// AdminHandler mutates the runtime settings. It is the only writer of
// config.Settings; everything else just reads.
type AdminHandler struct {
	settings    *config.Settings
	jwtService  auth.JWTServiceInterface
	adminSecret string
}

func New(settings *config.Settings, jwtService auth.JWTServiceInterface, adminSecret string) *AdminHandler {
	return &AdminHandler{
		settings:    settings,
		jwtService:  jwtService,
		adminSecret: adminSecret,
	}
}

// Login godoc
//
//	@Summary		Exchange the admin secret for a bearer token
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminLoginRequestDTO	true	"Admin login body"
//	@Success		200		{object}	dto.AdminLoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Wrong secret"
//	@Failure		403		{object}	utils.Response	"Admin API disabled"
//	@Router			/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.adminSecret == "" {
		utils.RespondWithError(w, http.StatusForbidden, "admin API is disabled")
		return
	}

	var req dto.AdminLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.adminSecret)) != 1 {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	token, err := h.jwtService.GenerateAdminJWT(time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate admin token", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminLoginResponseDTO{
		Message: "admin authenticated",
	})
}

// EnableLottery godoc
//
//	@Summary	Enable the lottery
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.AdminToggleResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/admin/lottery/enable [post]
func (h *AdminHandler) EnableLottery(w http.ResponseWriter, r *http.Request) {
	h.settings.SetLotteryEnabled(true)
	zap.L().Info("lottery enabled by admin")
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminToggleResponseDTO{
		Message: "lottery enabled",
		Enabled: true,
	})
}

// DisableLottery godoc
//
//	@Summary	Disable the lottery
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.AdminToggleResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Router		/api/admin/lottery/disable [post]
func (h *AdminHandler) DisableLottery(w http.ResponseWriter, r *http.Request) {
	h.settings.SetLotteryEnabled(false)
	zap.L().Info("lottery disabled by admin")
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminToggleResponseDTO{
		Message: "lottery disabled",
		Enabled: false,
	})
}
