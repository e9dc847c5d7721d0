package service

import (
	"github.com/libin99527/newapi-checkin/internal/clock"
	"github.com/libin99527/newapi-checkin/internal/config"
	"github.com/libin99527/newapi-checkin/internal/handlers/account"
	"github.com/libin99527/newapi-checkin/internal/handlers/checkin"
	"github.com/libin99527/newapi-checkin/internal/handlers/lottery"
	"github.com/libin99527/newapi-checkin/internal/ledger"
	lotteryengine "github.com/libin99527/newapi-checkin/internal/lottery"
	"github.com/libin99527/newapi-checkin/internal/repo"
	bindservice "github.com/libin99527/newapi-checkin/internal/service/bindservice"
	checkinservice "github.com/libin99527/newapi-checkin/internal/service/checkinservice"
	lotteryservice "github.com/libin99527/newapi-checkin/internal/service/lotteryservice"
)

type Services struct {
	BindService    account.Service
	CheckinService checkin.Service
	LotteryService lottery.Service
}

func New(repo *repo.Repositories, ledgerClient *ledger.Client, settings *config.Settings, clockPolicy *clock.Policy) *Services {
	engine := lotteryengine.New(nil)

	return &Services{
		BindService:    bindservice.New(repo.BindingRepo, ledgerClient, clockPolicy),
		CheckinService: checkinservice.New(repo.BindingRepo, ledgerClient, settings, clockPolicy),
		LotteryService: lotteryservice.New(repo.BindingRepo, repo.DrawRepo, ledgerClient, engine, settings, clockPolicy),
	}
}
