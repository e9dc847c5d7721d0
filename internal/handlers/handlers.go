package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/libin99527/newapi-checkin/docs"
	"github.com/libin99527/newapi-checkin/internal/config"
	accounthandlers "github.com/libin99527/newapi-checkin/internal/handlers/account"
	adminhandlers "github.com/libin99527/newapi-checkin/internal/handlers/admin"
	checkinhandlers "github.com/libin99527/newapi-checkin/internal/handlers/checkin"
	lotteryhandlers "github.com/libin99527/newapi-checkin/internal/handlers/lottery"
	"github.com/libin99527/newapi-checkin/internal/service"
	"github.com/libin99527/newapi-checkin/pkg/auth"
)

type AccountHandler interface {
	Bind(w http.ResponseWriter, r *http.Request)
	GetBinding(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type CheckinHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
}

type LotteryHandler interface {
	Draw(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	EnableLottery(w http.ResponseWriter, r *http.Request)
	DisableLottery(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler AccountHandler
	CheckinHandler CheckinHandler
	LotteryHandler LotteryHandler
	AdminHandler   AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, settings *config.Settings, jwtService auth.JWTServiceInterface, adminSecret string) *Handlers {
	return &Handlers{
		AccountHandler: accounthandlers.New(s.BindService),
		CheckinHandler: checkinhandlers.New(s.CheckinService),
		LotteryHandler: lotteryhandlers.New(s.LotteryService),
		AdminHandler:   adminhandlers.New(settings, jwtService, adminSecret),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/account", func(r chi.Router) {
			r.Post("/bind", h.AccountHandler.Bind)
			r.Get("/binding", h.AccountHandler.GetBinding)
			r.Get("/balance", h.AccountHandler.GetBalance)
		})
		r.Post("/checkin", h.CheckinHandler.CheckIn)
		r.Route("/lottery", func(r chi.Router) {
			r.Post("/draw", h.LotteryHandler.Draw)
			r.Get("/status", h.LotteryHandler.Status)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.AdminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AdminMiddleware(h.jwtService))
				r.Post("/lottery/enable", h.AdminHandler.EnableLottery)
				r.Post("/lottery/disable", h.AdminHandler.DisableLottery)
			})
		})
	})

	return r
}
