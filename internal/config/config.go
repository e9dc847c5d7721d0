package config

import (
	"encoding/json"
	"flag"

	"github.com/caarlos0/env/v6"
	"go.uber.org/zap"

	"github.com/libin99527/newapi-checkin/internal/domain"
)

type Config struct {
	Address           string `env:"RUN_ADDRESS"         envDefault:"localhost:8080"`
	LedgerDSN         string `env:"LEDGER_DATABASE_URI" envDefault:"postgres://postgres:@localhost:5432/new-api?sslmode=disable"`
	LocalDBPath       string `env:"LOCAL_DB_PATH"       envDefault:"data/bindings.db"`
	LogLvl            string `env:"LOG_LVL"             envDefault:"info"`
	CheckinQuota      int64  `env:"CHECKIN_QUOTA"       envDefault:"500000"`
	EnableDailyLimit  bool   `env:"ENABLE_DAILY_LIMIT"  envDefault:"true"`
	LotteryEnabled    bool   `env:"LOTTERY_ENABLED"     envDefault:"false"`
	LotteryDailyLimit int    `env:"LOTTERY_DAILY_LIMIT" envDefault:"1"`
	LotteryPrizes     string `env:"LOTTERY_PRIZES"      envDefault:""`
	DayOffsetHours    int    `env:"DAY_OFFSET_HOURS"    envDefault:"8"`
	AdminSecret       string `env:"ADMIN_SECRET"        envDefault:""`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.LedgerDSN, "d", cfg.LedgerDSN, "New-API ledger database DSN")
	flag.StringVar(&cfg.LocalDBPath, "f", cfg.LocalDBPath, "local bindings database file")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	return cfg
}

// defaultPrizes is the compiled-in table used when LOTTERY_PRIZES is empty
// or does not parse.
var defaultPrizes = []domain.Prize{
	{Quota: 1000000, Weight: 5, Name: "超级大奖"},
	{Quota: 500000, Weight: 15, Name: "大奖"},
	{Quota: 100000, Weight: 50, Name: "普通奖"},
	{Quota: 0, Weight: 30, Name: "谢谢参与"},
}

// PrizeTable parses the configured prize table. A malformed table must not
// fail startup: it falls back to the compiled-in default with a diagnostic.
func (c *Config) PrizeTable() []domain.Prize {
	if c.LotteryPrizes == "" {
		return defaultPrizes
	}
	var prizes []domain.Prize
	if err := json.Unmarshal([]byte(c.LotteryPrizes), &prizes); err != nil {
		zap.L().Error("can't parse lottery prize table, using default", zap.Error(err))
		return defaultPrizes
	}
	if len(prizes) == 0 {
		zap.L().Error("empty lottery prize table, using default")
		return defaultPrizes
	}
	return prizes
}
