package domain

import "time"

// Binding links a chat caller to a New-API account. Both sides are unique:
// one binding per caller, one caller per account.
type Binding struct {
	CallerID    string     `db:"caller_id" gorm:"column:caller_id;primaryKey;type:text"`
	AccountName string     `db:"account_name" gorm:"column:account_name;not null;uniqueIndex:idx_bindings_account_name;type:text"`
	BoundAt     time.Time  `db:"bound_at" gorm:"column:bound_at;not null"`
	LastCheckin *time.Time `db:"last_checkin" gorm:"column:last_checkin"`
}

func (Binding) TableName() string {
	return "bindings"
}

// LotteryDraw is one row of the append-only draw log.
type LotteryDraw struct {
	ID         int       `db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CallerID   string    `db:"caller_id" gorm:"column:caller_id;not null;index:idx_draws_caller_time;type:text"`
	PrizeName  string    `db:"prize_name" gorm:"column:prize_name;not null;type:text"`
	PrizeQuota int64     `db:"prize_quota" gorm:"column:prize_quota;not null"`
	DrawnAt    time.Time `db:"drawn_at" gorm:"column:drawn_at;not null;index:idx_draws_caller_time"`
}

func (LotteryDraw) TableName() string {
	return "lottery_draws"
}

// Prize is one entry of the configured prize table. Table order matters:
// the selection walk accumulates weights in configured order.
type Prize struct {
	Quota  int64   `json:"quota"`
	Weight float64 `json:"weight"`
	Name   string  `json:"name"`
}

// AccountBalance is the quota readout of a remote New-API account.
type AccountBalance struct {
	Quota     int64 `db:"quota"`
	UsedQuota int64 `db:"used_quota"`
}
